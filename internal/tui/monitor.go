// Package tui provides the live monitoring view: a polling dashboard of
// all tmux sessions and windows with their recent output.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hexonal/Tmux-Orchestrator/internal/snapshot"
	"github.com/hexonal/Tmux-Orchestrator/internal/util"
)

// DefaultRefreshInterval is the default auto-refresh interval.
const DefaultRefreshInterval = 2 * time.Second

// refreshMsg triggers a snapshot rebuild.
type refreshMsg time.Time

// snapshotMsg carries the result of a rebuild.
type snapshotMsg struct {
	snap *snapshot.Snapshot
	err  error
}

// keyMap defines the monitor keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

var monitorKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sessionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	attachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	windowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	outputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the monitor model. Create it with NewMonitor.
type Model struct {
	builder   *snapshot.Builder
	session   string // optional session filter
	tailLines int
	interval  time.Duration

	snap        *snapshot.Snapshot
	err         error
	cursor      int
	paused      bool
	quitting    bool
	width       int
	height      int
	spin        spinner.Model
	lastRefresh time.Time
}

// NewMonitor creates a monitor over the given snapshot builder. An empty
// session shows everything.
func NewMonitor(b *snapshot.Builder, session string, tailLines int, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		builder:   b,
		session:   session,
		tailLines: tailLines,
		interval:  interval,
		width:     80,
		height:    24,
		spin:      sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch(), m.schedule())
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.builder.Build(m.session)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m Model) schedule() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, monitorKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, monitorKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, monitorKeys.Down):
			if m.cursor < m.windowCount()-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, monitorKeys.Refresh):
			return m, m.fetch()
		case key.Matches(msg, monitorKeys.Pause):
			m.paused = !m.paused
			if !m.paused {
				return m, m.schedule()
			}
			return m, nil
		}
		return m, nil

	case refreshMsg:
		if m.paused || m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.fetch(), m.schedule())

	case snapshotMsg:
		m.err = msg.err
		if msg.err == nil {
			m.snap = msg.snap
			m.lastRefresh = time.Now()
			if max := m.windowCount() - 1; m.cursor > max && max >= 0 {
				m.cursor = max
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// windowCount counts all windows across sessions for cursor bounds.
func (m Model) windowCount() int {
	if m.snap == nil {
		return 0
	}
	n := 0
	for _, s := range m.snap.Sessions {
		n += len(s.Windows)
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := "Tmux Orchestrator Monitor"
	if m.session != "" {
		header += " " + util.TruncateWidth(m.session, 30)
	}
	b.WriteString(titleStyle.Render(header))
	if m.paused {
		b.WriteString(attachedStyle.Render("  [paused]"))
	} else if m.snap == nil {
		b.WriteString("  " + m.spin.View())
	}
	if !m.lastRefresh.IsZero() {
		b.WriteString(helpStyle.Render("  refreshed " + m.lastRefresh.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	}

	if m.snap != nil {
		b.WriteString(m.renderSessions())
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ select · r refresh · p pause · q quit"))
	return b.String()
}

func (m Model) renderSessions() string {
	var b strings.Builder
	idx := 0
	for _, s := range m.snap.Sessions {
		label := s.Name
		if s.Attached {
			label += " " + attachedStyle.Render("(attached)")
		}
		b.WriteString(sessionStyle.Render(label) + "\n")

		for _, w := range s.Windows {
			line := fmt.Sprintf("  %d: %s", w.Index, w.Name)
			if w.Active {
				line += " *"
			}
			style := windowStyle
			if idx == m.cursor {
				style = selectedStyle
				line = ">" + line[1:]
			}
			b.WriteString(style.Render(util.TruncateWidth(line, m.width)) + "\n")

			if idx == m.cursor {
				b.WriteString(m.renderWindowDetail(w))
			}
			idx++
		}
	}
	return b.String()
}

// renderWindowDetail shows recent output for the selected window.
func (m Model) renderWindowDetail(w snapshot.Window) string {
	var b strings.Builder
	if w.Err != "" {
		b.WriteString("      " + errStyle.Render(w.Err) + "\n")
	}
	wrapWidth := m.width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	for _, line := range util.NonEmptyLines(util.TailLines(w.Content, m.tailLines)) {
		wrapped := wordwrap.String(line, wrapWidth)
		for _, wl := range strings.Split(wrapped, "\n") {
			b.WriteString("      " + outputStyle.Render(wl) + "\n")
		}
	}
	return b.String()
}
