package snapshot

import (
	"fmt"
	"strings"

	"github.com/hexonal/Tmux-Orchestrator/internal/util"
)

// Render formats the snapshot as the monitoring report: one block per
// session, each window with up to tailLines of recent output prefixed
// with "| ". Lines wider than width are truncated; width <= 0 disables
// truncation. The layout is stable so agents can parse it.
func (s *Snapshot) Render(tailLines, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tmux Monitoring Snapshot - %s\n", s.Timestamp.Format("2006-01-02T15:04:05"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, session := range s.Sessions {
		state := "DETACHED"
		if session.Attached {
			state = "ATTACHED"
		}
		fmt.Fprintf(&b, "Session: %s (%s)\n", session.Name, state)
		b.WriteString(strings.Repeat("-", 30) + "\n")

		for _, w := range session.Windows {
			fmt.Fprintf(&b, "  Window %d: %s", w.Index, w.Name)
			if w.Active {
				b.WriteString(" (ACTIVE)")
			}
			b.WriteString("\n")

			if w.Err != "" {
				fmt.Fprintf(&b, "    Error: %s\n", w.Err)
			}

			recent := util.NonEmptyLines(util.TailLines(w.Content, tailLines))
			if len(recent) > 0 {
				b.WriteString("    Recent output:\n")
				for _, line := range recent {
					if width > 0 {
						line = util.TruncateWidth(line, width)
					}
					fmt.Fprintf(&b, "    | %s\n", line)
				}
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
