// Package snapshot builds point-in-time status trees of all tmux sessions
// and windows, with recent pane output, for humans and agents to review.
package snapshot

import (
	"fmt"
	"time"

	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

// Window is one window's status, including a capture of recent output.
type Window struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	Active  bool   `json:"active" yaml:"active"`
	Panes   int    `json:"panes,omitempty" yaml:"panes,omitempty"`
	Layout  string `json:"layout,omitempty" yaml:"layout,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Err     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Session groups the windows of one tmux session.
type Session struct {
	Name     string   `json:"name" yaml:"name"`
	Attached bool     `json:"attached" yaml:"attached"`
	Windows  []Window `json:"windows" yaml:"windows"`
}

// Snapshot is the full status tree at one instant.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Sessions  []Session `json:"sessions" yaml:"sessions"`
}

// registry is the subset of the tmux client the builder reads from.
type registry interface {
	ListSessions() ([]tmux.Session, error)
	GetWindowInfo(target string) (*tmux.WindowInfo, error)
	CapturePane(target string, lines int) (string, error)
}

// Builder collects snapshots from a tmux registry.
type Builder struct {
	Registry registry
	Lines    int // pane lines captured per window
	MaxLines int // hard clamp protecting against oversized captures
}

// NewBuilder creates a Builder reading through reg.
func NewBuilder(reg registry, lines, maxLines int) *Builder {
	return &Builder{Registry: reg, Lines: lines, MaxLines: maxLines}
}

// Build collects the status of all sessions, or just the named one when
// sessionFilter is non-empty. Per-window failures are recorded on the
// window rather than aborting the whole snapshot.
func (b *Builder) Build(sessionFilter string) (*Snapshot, error) {
	sessions, err := b.Registry.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	lines := b.Lines
	if b.MaxLines > 0 && lines > b.MaxLines {
		lines = b.MaxLines
	}

	snap := &Snapshot{Timestamp: time.Now()}
	for _, s := range sessions {
		if sessionFilter != "" && s.Name != sessionFilter {
			continue
		}

		ss := Session{Name: s.Name, Attached: s.Attached}
		for _, w := range s.Windows {
			sw := Window{Index: w.Index, Name: w.Name, Active: w.Active}

			if info, err := b.Registry.GetWindowInfo(w.Target()); err == nil {
				sw.Panes = info.Panes
				sw.Layout = info.Layout
			} else {
				sw.Err = err.Error()
			}

			if content, err := b.Registry.CapturePane(w.Target(), lines); err == nil {
				sw.Content = content
			} else if sw.Err == "" {
				sw.Err = err.Error()
			}

			ss.Windows = append(ss.Windows, sw)
		}
		snap.Sessions = append(snap.Sessions, ss)
	}

	if sessionFilter != "" && len(snap.Sessions) == 0 {
		return nil, fmt.Errorf("session '%s' not found", sessionFilter)
	}

	return snap, nil
}
