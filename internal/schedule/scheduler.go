// Package schedule implements the deferred check-in scheduler: it persists
// the check-in note, spawns a detached one-shot timer, and delivers the
// composed check-in message into a tmux window when the timer expires.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/hexonal/Tmux-Orchestrator/internal/note"
)

// Request describes one check-in to schedule.
type Request struct {
	DelayMinutes float64 // positive, may be fractional
	Note         string
	Target       string // session:window address
}

// Result is returned as soon as the timer has been spawned. The schedule
// call itself never waits for the delay.
type Result struct {
	PID     int       // detached timer process
	FireAt  time.Time // best-effort display value; the guarantee is the sleep duration
	Seconds int
}

// registry is the subset of the tmux client the scheduler consults.
type registry interface {
	TargetExists(target string) bool
}

// SpawnFunc starts the detached timer process and returns its PID.
type SpawnFunc func(args []string) (int, error)

// Scheduler persists the note and spawns detached timers. Spawn and Warnf
// are injectable for tests; both have working defaults.
type Scheduler struct {
	Registry registry
	Store    *note.Store
	Spawn    SpawnFunc
	Warnf    func(format string, args ...interface{})
}

// New creates a Scheduler delivering through reg and persisting via store.
// The default Spawn re-executes this binary with the hidden fire command.
func New(reg registry, store *note.Store) *Scheduler {
	return &Scheduler{
		Registry: reg,
		Store:    store,
		Spawn:    spawnDetached,
		Warnf:    func(string, ...interface{}) {},
	}
}

// DelayToSeconds converts a fractional-minute delay to whole seconds,
// rounding to the nearest second and never returning less than one second
// for a positive delay.
func DelayToSeconds(minutes float64) int {
	seconds := int(math.Round(minutes * 60))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// Schedule writes the note, spawns the detached timer, and returns
// immediately with the timer's PID and the expected fire time.
//
// A target that does not resolve right now is only a warning: the session
// may well exist by the time the timer fires. Failing to persist the note
// or to spawn the timer is fatal for this request.
func (s *Scheduler) Schedule(req Request) (*Result, error) {
	if req.DelayMinutes <= 0 {
		return nil, fmt.Errorf("delay must be positive, got %v minutes", req.DelayMinutes)
	}
	if req.Target == "" {
		return nil, fmt.Errorf("target is required")
	}

	seconds := DelayToSeconds(req.DelayMinutes)
	fireAt := time.Now().Add(time.Duration(seconds) * time.Second)

	if !s.Registry.TargetExists(req.Target) {
		s.Warnf("target %s not found in tmux; scheduling anyway (it may exist by fire time)", req.Target)
	}

	if err := s.Store.Write(req.Note, req.DelayMinutes); err != nil {
		return nil, err
	}

	// The timer captures target and note path by value: schedule calls
	// issued later must not retarget an already-running timer.
	args := []string{
		"fire",
		"--target", req.Target,
		"--note-path", s.Store.Path,
		"--seconds", fmt.Sprintf("%d", seconds),
	}

	pid, err := s.Spawn(args)
	if err != nil {
		return nil, fmt.Errorf("spawning timer: %w", err)
	}

	return &Result{PID: pid, FireAt: fireAt, Seconds: seconds}, nil
}
