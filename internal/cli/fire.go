package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/config"
	"github.com/hexonal/Tmux-Orchestrator/internal/schedule"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

// newFireCmd is the body of the detached timer. The schedule command
// re-executes this binary with "fire" so the timer survives the parent
// exiting; it is not meant to be run by hand.
func newFireCmd() *cobra.Command {
	var (
		target   string
		notePath string
		seconds  int
	)

	cmd := &cobra.Command{
		Use:    "fire",
		Short:  "Run a detached check-in timer (internal use)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, logFile, err := schedule.OpenTimerLog(config.DataDir())
			if err == nil {
				defer logFile.Close()
			}

			d := &schedule.Dispatcher{
				Registry:       tmux.DefaultClient,
				NotePath:       notePath,
				StatusProvider: cfg.Scheduler.StatusProvider,
				Settle:         time.Duration(cfg.Scheduler.SettleDelayMs) * time.Millisecond,
				Logger:         logger,
			}

			if logger != nil {
				logger.Info("timer armed", "target", target, "seconds", seconds)
			}
			d.Run(context.Background(), time.Duration(seconds)*time.Second, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "session:window to deliver into")
	cmd.Flags().StringVar(&notePath, "note-path", "", "note file the message will display")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "sleep duration before firing")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("note-path")
	_ = cmd.MarkFlagRequired("seconds")

	return cmd
}
