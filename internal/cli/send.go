package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/output"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
	"github.com/hexonal/Tmux-Orchestrator/internal/util"
)

func newSendCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "send <target> <message>",
		Short: "Send a message to a window and submit it",
		Long: `Send types the message into the target window as literal keystrokes,
waits for the pane to register the input, then sends Enter. By default it
asks for confirmation first, since the keystrokes land in whatever is
focused in that window.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			message := strings.Join(args[1:], " ")

			if !tmux.DefaultClient.TargetExists(target) {
				return fmt.Errorf("target %s not found", target)
			}

			if cfg.Send.Confirm && !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to send without confirmation on a non-interactive stdin (use --yes)")
				}
				if !confirmSend(os.Stdin, os.Stdout, target, message) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			settle := time.Duration(cfg.Scheduler.SettleDelayMs) * time.Millisecond
			if err := tmux.DefaultClient.SendCommand(target, message, settle); err != nil {
				return err
			}
			output.PrintSuccessf("Sent to %s", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirmSend asks for a y/N answer before keystrokes are injected.
func confirmSend(r io.Reader, w io.Writer, target, message string) bool {
	fmt.Fprintf(w, "Send to %s: %q\n", target, util.TruncateWidth(message, 60))
	fmt.Fprint(w, "Proceed? [y/N] ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
