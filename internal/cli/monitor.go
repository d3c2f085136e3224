package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/snapshot"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
	"github.com/hexonal/Tmux-Orchestrator/internal/tui"
)

func newMonitorCmd() *cobra.Command {
	var interval int

	cmd := &cobra.Command{
		Use:   "monitor [session]",
		Short: "Live session monitor (TUI)",
		Long: `Monitor shows all sessions and windows with their recent output,
refreshing automatically. Select a window with the arrow keys to see its
output; press p to pause refreshing, q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tmux.DefaultClient.EnsureInstalled(); err != nil {
				return err
			}

			session := ""
			if len(args) > 0 {
				session = args[0]
			}
			if interval <= 0 {
				interval = cfg.Monitor.RefreshIntervalMs
			}

			b := snapshot.NewBuilder(tmux.DefaultClient, cfg.Capture.DefaultLines, cfg.Capture.MaxLines)
			m := tui.NewMonitor(b, session, cfg.Monitor.TailLines, time.Duration(interval)*time.Millisecond)

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running monitor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 0, "refresh interval in milliseconds")
	return cmd
}
