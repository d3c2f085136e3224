package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/output"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

func newSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List tmux sessions and their windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tmux.DefaultClient.EnsureInstalled(); err != nil {
				return err
			}

			sessions, err := tmux.DefaultClient.ListSessions()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No tmux sessions running.")
				return nil
			}

			t := output.NewTable(os.Stdout, "SESSION", "WINDOWS", "ATTACHED", "CREATED")
			for _, s := range sessions {
				attached := ""
				if s.Attached {
					attached = "yes"
				}
				t.AddRow(s.Name, strconv.Itoa(len(s.Windows)), attached, s.Created)
			}
			t.Render()
			return nil
		},
	}
}
