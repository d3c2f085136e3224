package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
	"github.com/hexonal/Tmux-Orchestrator/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	var (
		pattern string
		target  string
		command string
	)

	cmd := &cobra.Command{
		Use:   "watch <path>...",
		Short: "Watch files and notify a window on changes",
		Long: `Watch monitors the given files or directories and reports changes,
coalescing bursts of writes into one notification. With --target the
notification is typed into a tmux window, so an agent waiting there
learns about the change; without it, changes are printed to stdout.
--command replaces the notification with a fixed command to type into
the target, turning a file change into a triggered check-in.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if command != "" && target == "" {
				return fmt.Errorf("--command requires --target")
			}
			if target != "" && !tmux.DefaultClient.TargetExists(target) {
				return fmt.Errorf("target %s not found", target)
			}

			settle := time.Duration(cfg.Scheduler.SettleDelayMs) * time.Millisecond
			onBatch := func(events []watcher.Event) {
				summary := summarizeBatch(events)
				if target == "" {
					fmt.Println(summary)
					return
				}
				text := summary
				if command != "" {
					text = command
				}
				if err := tmux.DefaultClient.SendCommand(target, text, settle); err != nil {
					fmt.Printf("notify %s failed: %v\n", target, err)
				}
			}

			w := watcher.New(args, pattern, onBatch)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s (ctrl-c to stop)\n", strings.Join(args, ", "))
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only report files whose name matches this glob")
	cmd.Flags().StringVarP(&target, "target", "t", "", "session:window to notify instead of stdout")
	cmd.Flags().StringVarP(&command, "command", "c", "", "send this command to the target instead of the change summary")
	return cmd
}

// summarizeBatch renders one change batch as a single notification line.
func summarizeBatch(events []watcher.Event) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		parts = append(parts, fmt.Sprintf("%s (%s)", ev.Path, ev.Op))
	}
	return "Files changed: " + strings.Join(parts, ", ")
}
