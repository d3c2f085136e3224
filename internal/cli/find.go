package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/output"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Find windows by name across all sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := tmux.DefaultClient.FindWindows(args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Printf("No windows matching %q.\n", args[0])
				return nil
			}

			t := output.NewTable(os.Stdout, "TARGET", "NAME", "ACTIVE")
			for _, w := range matches {
				active := ""
				if w.Active {
					active = "yes"
				}
				t.AddRow(w.Target(), w.Name, active)
			}
			t.Render()
			return nil
		},
	}
}
