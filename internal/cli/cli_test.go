package cli

import (
	"strings"
	"testing"

	"github.com/hexonal/Tmux-Orchestrator/internal/config"
	"github.com/hexonal/Tmux-Orchestrator/internal/watcher"
)

func TestResolveScheduleRequest(t *testing.T) {
	t.Parallel()
	c := config.Default()

	t.Run("no args uses defaults", func(t *testing.T) {
		t.Parallel()
		req, err := resolveScheduleRequest(c, nil)
		if err != nil {
			t.Fatal(err)
		}
		if req.DelayMinutes != c.Scheduler.DefaultDelayMinutes {
			t.Errorf("delay = %v", req.DelayMinutes)
		}
		if req.Note != c.Scheduler.DefaultNote {
			t.Errorf("note = %q", req.Note)
		}
		if req.Target != c.Scheduler.DefaultTarget {
			t.Errorf("target = %q", req.Target)
		}
	})

	t.Run("all args override", func(t *testing.T) {
		t.Parallel()
		req, err := resolveScheduleRequest(c, []string{"0.5", "check build", "proj:2"})
		if err != nil {
			t.Fatal(err)
		}
		if req.DelayMinutes != 0.5 {
			t.Errorf("delay = %v, want 0.5", req.DelayMinutes)
		}
		if req.Note != "check build" {
			t.Errorf("note = %q", req.Note)
		}
		if req.Target != "proj:2" {
			t.Errorf("target = %q", req.Target)
		}
	})

	t.Run("partial args keep remaining defaults", func(t *testing.T) {
		t.Parallel()
		req, err := resolveScheduleRequest(c, []string{"15"})
		if err != nil {
			t.Fatal(err)
		}
		if req.DelayMinutes != 15 {
			t.Errorf("delay = %v", req.DelayMinutes)
		}
		if req.Target != c.Scheduler.DefaultTarget {
			t.Errorf("target = %q", req.Target)
		}
	})

	t.Run("non-numeric delay rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := resolveScheduleRequest(c, []string{"soon"}); err == nil {
			t.Error("expected error for non-numeric delay")
		}
	})
}

func TestConfirmSend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"eof defaults to no", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			got := confirmSend(strings.NewReader(tt.input), &out, "dev:0", "hello")
			if got != tt.want {
				t.Errorf("confirmSend(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "dev:0") {
				t.Errorf("prompt must name the target: %q", out.String())
			}
		})
	}
}

func TestSummarizeBatch(t *testing.T) {
	t.Parallel()
	got := summarizeBatch([]watcher.Event{
		{Path: "/p/a.go", Op: "write"},
		{Path: "/p/b.go", Op: "create"},
	})
	want := "Files changed: /p/a.go (write), /p/b.go (create)"
	if got != want {
		t.Errorf("summarizeBatch = %q, want %q", got, want)
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		minutes float64
		want    string
	}{
		{3, "3"},
		{0.5, "0.5"},
		{1.25, "1.25"},
	}
	for _, tt := range tests {
		tt := tt
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
