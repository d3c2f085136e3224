package schedule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// CheckPrefix opens every dispatched check-in message.
const CheckPrefix = "Time for orchestrator check! "

// sender is the subset of the tmux client the dispatcher delivers through.
type sender interface {
	TargetExists(target string) bool
	SendKeys(target, text string) error
	SendSubmit(target string) error
}

// Dispatcher is the body of the detached timer: sleep, compose, deliver.
// Delivery is at-most-once; any failure is logged and swallowed, because
// by the time it fires there is no caller left to report to.
type Dispatcher struct {
	Registry       sender
	NotePath       string
	StatusProvider string        // executable name resolved next to our own binary
	Settle         time.Duration // pause between text injection and the submit keystroke
	Logger         *log.Logger
}

// Run sleeps for delay, then fires at target. The context is checked
// before the firing transition; cancelling it is the only way to stop a
// timer, and the scheduler deliberately retains no handle to do so.
func (d *Dispatcher) Run(ctx context.Context, delay time.Duration, target string) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		d.logf("timer cancelled before firing", "target", target)
		return
	case <-timer.C:
	}

	if ctx.Err() != nil {
		d.logf("timer cancelled before firing", "target", target)
		return
	}

	d.Fire(target)
}

// Fire composes and delivers the check-in message. It never returns an
// error: a missing target or a rejected injection ends the timer quietly.
func (d *Dispatcher) Fire(target string) {
	msg := ComposeMessage(d.NotePath, d.resolveProvider())

	if !d.Registry.TargetExists(target) {
		d.logf("target gone at fire time, dropping check-in", "target", target)
		return
	}

	if err := d.Registry.SendKeys(target, msg); err != nil {
		d.logf("injecting message failed", "target", target, "err", err)
		return
	}

	if d.Settle > 0 {
		time.Sleep(d.Settle)
	}

	if err := d.Registry.SendSubmit(target); err != nil {
		d.logf("submit keystroke failed", "target", target, "err", err)
		return
	}

	d.logf("check-in delivered", "target", target)
}

// ComposeMessage builds the check-in text: the fixed prefix, a command
// displaying the current note, and a chained request for a detailed
// status report when a status provider is available.
func ComposeMessage(notePath, providerPath string) string {
	msg := fmt.Sprintf("%scat '%s'", CheckPrefix, notePath)
	if providerPath != "" {
		msg += fmt.Sprintf(" && %s status detailed", providerPath)
	}
	return msg
}

// resolveProvider looks for the status provider executable next to our own
// binary. The check happens at fire time, so a provider installed after
// scheduling is picked up. Absence just means a plainer message.
func (d *Dispatcher) resolveProvider() string {
	if d.StatusProvider == "" {
		return ""
	}

	executable, err := os.Executable()
	if err != nil {
		return ""
	}

	candidate := filepath.Join(filepath.Dir(executable), d.StatusProvider)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return ""
	}
	return candidate
}

func (d *Dispatcher) logf(msg string, kv ...interface{}) {
	if d.Logger != nil {
		d.Logger.Info(msg, kv...)
	}
}

// OpenTimerLog opens (creating if needed) the timer log under dir and
// returns a key-value logger writing to it. The detached timer has no
// terminal; this file is its only trace.
func OpenTimerLog(dir string) (*log.Logger, *os.File, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(logDir, "scheduler.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening timer log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "timer",
	})
	return logger, f, nil
}
