package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/config"
	"github.com/hexonal/Tmux-Orchestrator/internal/note"
	"github.com/hexonal/Tmux-Orchestrator/internal/output"
	"github.com/hexonal/Tmux-Orchestrator/internal/schedule"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [delay-minutes] [note] [target]",
		Short: "Schedule a deferred check-in message",
		Long: `Schedule writes the check-in note and spawns a detached timer that
injects a check-in message into the target window after the delay.

The delay may be fractional (0.5 = thirty seconds). Arguments fall back
to the configured defaults, so a bare "tmo schedule" arms the standard
check-in. There is a single shared note slot: scheduling again before an
earlier timer fires overwrites the note both timers will display.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := resolveScheduleRequest(cfg, args)
			if err != nil {
				return err
			}

			s := schedule.New(tmux.DefaultClient, note.NewStore(cfg.NotePath))
			s.Warnf = output.PrintWarningf

			res, err := s.Schedule(req)
			if err != nil {
				return err
			}

			output.PrintSuccessf("Check-in scheduled for %s (in %ds)", res.FireAt.Format("15:04:05"), res.Seconds)
			fmt.Printf("Target:    %s\n", req.Target)
			fmt.Printf("Note file: %s\n", cfg.NotePath)
			fmt.Printf("Timer PID: %d\n", res.PID)
			return nil
		},
	}
}

// resolveScheduleRequest fills a schedule request from positional args,
// falling back to configured defaults for anything omitted.
func resolveScheduleRequest(cfg *config.Config, args []string) (schedule.Request, error) {
	req := schedule.Request{
		DelayMinutes: cfg.Scheduler.DefaultDelayMinutes,
		Note:         cfg.Scheduler.DefaultNote,
		Target:       cfg.Scheduler.DefaultTarget,
	}

	if len(args) > 0 {
		minutes, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return schedule.Request{}, fmt.Errorf("invalid delay %q: expected minutes as a number", args[0])
		}
		req.DelayMinutes = minutes
	}
	if len(args) > 1 {
		req.Note = args[1]
	}
	if len(args) > 2 {
		req.Target = args[2]
	}

	return req, nil
}
