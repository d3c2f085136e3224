package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hexonal/Tmux-Orchestrator/internal/snapshot"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

func newStatusCmd() *cobra.Command {
	var (
		format string
		lines  int
	)

	cmd := &cobra.Command{
		Use:   "status [session]",
		Short: "Snapshot all sessions and windows with recent output",
		Long: `Status builds a point-in-time report of every tmux session and window,
including the last lines of pane output. Agents consume the json or yaml
formats; the text format is for humans.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := ""
			if len(args) > 0 {
				session = args[0]
			}
			if lines <= 0 {
				lines = cfg.Capture.DefaultLines
			}

			b := snapshot.NewBuilder(tmux.DefaultClient, lines, cfg.Capture.MaxLines)
			snap, err := b.Build(session)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer enc.Close()
				return enc.Encode(snap)
			case "text":
				width := 0
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
				fmt.Print(snap.Render(cfg.Monitor.TailLines, width))
				return nil
			default:
				return fmt.Errorf("unknown format %q: expected text, json, or yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "pane lines to capture per window")
	return cmd
}
