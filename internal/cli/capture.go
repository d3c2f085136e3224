package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

func newCaptureCmd() *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "capture <target>",
		Short: "Print recent output from a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if !tmux.DefaultClient.TargetExists(target) {
				return fmt.Errorf("target %s not found", target)
			}

			if lines <= 0 {
				lines = cfg.Capture.DefaultLines
			}
			if lines > cfg.Capture.MaxLines {
				lines = cfg.Capture.MaxLines
			}

			content, err := tmux.DefaultClient.CapturePane(target, lines)
			if err != nil {
				return err
			}
			fmt.Println(content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "lines of scrollback to capture")
	return cmd
}
