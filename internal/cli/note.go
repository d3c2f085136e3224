package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/note"
	"github.com/hexonal/Tmux-Orchestrator/internal/output"
)

func newNoteCmd() *cobra.Command {
	var pathOnly bool

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Show the current check-in note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := note.NewStore(cfg.NotePath)

			if pathOnly {
				fmt.Println(store.Path)
				return nil
			}

			if !store.Exists() {
				fmt.Println("No check-in note scheduled.")
				fmt.Println(output.Dim("Note file: " + store.Path))
				return nil
			}

			n, err := store.Read()
			if err != nil {
				return fmt.Errorf("reading note: %w", err)
			}

			created := "unknown"
			if !n.CreatedAt.IsZero() {
				created = n.CreatedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("Created:  %s\n", created)
			fmt.Printf("Delay:    %s minutes\n", formatMinutes(n.DelayMinutes))
			fmt.Printf("Note:\n%s\n", n.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pathOnly, "path", false, "print only the note file path")
	return cmd
}

func formatMinutes(minutes float64) string {
	if minutes == float64(int64(minutes)) {
		return fmt.Sprintf("%d", int64(minutes))
	}
	return fmt.Sprintf("%g", minutes)
}
