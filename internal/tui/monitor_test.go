package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexonal/Tmux-Orchestrator/internal/snapshot"
)

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Sessions: []snapshot.Session{
			{
				Name:     "tmux-orc",
				Attached: true,
				Windows: []snapshot.Window{
					{Index: 0, Name: "orchestrator", Active: true, Content: "ready\n"},
				},
			},
			{
				Name: "dev",
				Windows: []snapshot.Window{
					{Index: 0, Name: "shell"},
					{Index: 1, Name: "server", Content: "listening\n"},
				},
			},
		},
	}
}

func TestMonitor_CursorStaysInBounds(t *testing.T) {
	t.Parallel()
	m := NewMonitor(nil, "", 10, 0)
	m.snap = testSnapshot()

	// Moving up at the top stays put.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}

	// Three windows total; down past the end clamps.
	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(Model)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamp at 2", m.cursor)
	}
}

func TestMonitor_SnapshotShrinkClampsCursor(t *testing.T) {
	t.Parallel()
	m := NewMonitor(nil, "", 10, 0)
	m.snap = testSnapshot()
	m.cursor = 2

	smaller := &snapshot.Snapshot{Sessions: []snapshot.Session{
		{Name: "dev", Windows: []snapshot.Window{{Index: 0, Name: "shell"}}},
	}}
	next, _ := m.Update(snapshotMsg{snap: smaller})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after snapshot shrank to one window", m.cursor)
	}
}

func TestMonitor_QuitKey(t *testing.T) {
	t.Parallel()
	m := NewMonitor(nil, "", 10, 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if !m.quitting {
		t.Error("q must set quitting")
	}
	if cmd == nil {
		t.Error("q must return the quit command")
	}
	if m.View() != "" {
		t.Error("quitting view must be empty")
	}
}

func TestMonitor_PauseStopsAutoRefresh(t *testing.T) {
	t.Parallel()
	m := NewMonitor(nil, "", 10, 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(Model)
	if !m.paused {
		t.Fatal("p must pause")
	}

	_, cmd := m.Update(refreshMsg{})
	if cmd != nil {
		t.Error("paused monitor must not schedule another refresh")
	}
}

func TestMonitor_ViewListsSessionsAndWindows(t *testing.T) {
	t.Parallel()
	m := NewMonitor(nil, "", 10, 0)
	m.snap = testSnapshot()
	m.width = 120

	out := m.View()
	for _, want := range []string{"tmux-orc", "orchestrator", "dev", "server", "ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
