package schedule

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeSender struct {
	exists    bool
	keysErr   error
	submitErr error

	calls []string // "keys:<text>" and "submit" in delivery order
}

func (f *fakeSender) TargetExists(string) bool { return f.exists }

func (f *fakeSender) SendKeys(target, text string) error {
	f.calls = append(f.calls, "keys:"+text)
	return f.keysErr
}

func (f *fakeSender) SendSubmit(target string) error {
	f.calls = append(f.calls, "submit")
	return f.submitErr
}

func TestComposeMessage(t *testing.T) {
	t.Parallel()

	t.Run("without provider", func(t *testing.T) {
		t.Parallel()
		msg := ComposeMessage("/data/next_check_note.txt", "")
		if !strings.HasPrefix(msg, CheckPrefix) {
			t.Errorf("message %q missing prefix %q", msg, CheckPrefix)
		}
		if !strings.Contains(msg, "cat '/data/next_check_note.txt'") {
			t.Errorf("message %q missing note display command", msg)
		}
		if strings.Contains(msg, "status detailed") {
			t.Errorf("message %q must not invoke status provider when absent", msg)
		}
	})

	t.Run("with provider", func(t *testing.T) {
		t.Parallel()
		msg := ComposeMessage("/data/note.txt", "/opt/bin/claude_control.py")
		noteIdx := strings.Index(msg, "cat '/data/note.txt'")
		statusIdx := strings.Index(msg, "/opt/bin/claude_control.py status detailed")
		if noteIdx == -1 || statusIdx == -1 {
			t.Fatalf("message %q missing note display or status invocation", msg)
		}
		if noteIdx > statusIdx {
			t.Errorf("note display must come before status invocation in %q", msg)
		}
	})
}

func TestFire_DeliversTextThenSubmit(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: true}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	d.Fire("dev:0")

	if len(reg.calls) != 2 {
		t.Fatalf("calls = %v, want keys then submit", reg.calls)
	}
	if !strings.HasPrefix(reg.calls[0], "keys:"+CheckPrefix) {
		t.Errorf("first call = %q, want injected text starting with prefix", reg.calls[0])
	}
	if !strings.Contains(reg.calls[0], "/data/note.txt") {
		t.Errorf("injected text %q does not reference note path", reg.calls[0])
	}
	if reg.calls[1] != "submit" {
		t.Errorf("second call = %q, want submit", reg.calls[1])
	}
}

func TestFire_MissingTargetIsQuietNoop(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: false}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	d.Fire("missing:9") // must not panic or propagate anything

	if len(reg.calls) != 0 {
		t.Errorf("no injection expected for missing target, got %v", reg.calls)
	}
}

func TestFire_InjectionFailureSkipsSubmit(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: true, keysErr: fmt.Errorf("pane rejected input")}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	d.Fire("dev:0")

	for _, c := range reg.calls {
		if c == "submit" {
			t.Error("submit must not be sent after failed injection")
		}
	}
}

func TestFire_SubmitFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: true, submitErr: fmt.Errorf("gone")}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	d.Fire("dev:0") // no panic, no error surface
}

func TestRun_FiresAfterDelay(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: true}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	start := time.Now()
	d.Run(context.Background(), 50*time.Millisecond, "dev:0")

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("fired after %v, before the delay elapsed", elapsed)
	}
	if len(reg.calls) == 0 {
		t.Error("expected delivery after delay")
	}
}

func TestRun_CancelledBeforeFiring(t *testing.T) {
	t.Parallel()
	reg := &fakeSender{exists: true}
	d := &Dispatcher{Registry: reg, NotePath: "/data/note.txt"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.Run(ctx, 10*time.Second, "dev:0")

	if len(reg.calls) != 0 {
		t.Errorf("cancelled timer must not fire, got %v", reg.calls)
	}
}
