// Package note persists the check-in note: a single-slot, overwrite-only
// mailbox shared between the scheduler (writer) and the dispatcher (reader).
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hexonal/Tmux-Orchestrator/internal/util"
)

const (
	headerPrefix = "=== Next Check Note ("
	headerSuffix = ") ==="
	delayPrefix  = "Scheduled for: "
	delaySuffix  = " minutes"
)

// Note is the persisted check-in payload.
type Note struct {
	Text         string
	DelayMinutes float64
	CreatedAt    time.Time // zero when the stored header could not be parsed
}

// Store reads and writes the note file at a fixed path. There is no
// locking: concurrent schedules race on the same slot and the last write
// wins. A timer firing later may therefore read a note written by a more
// recent schedule call; that is the intended single-mailbox behavior.
type Store struct {
	Path string
}

// NewStore creates a store bound to path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Write overwrites the note file with the given note text and requested
// delay. The containing directory is created if needed; failure to do so
// is fatal for the scheduling request and propagates.
func (s *Store) Write(text string, delayMinutes float64) error {
	return s.writeAt(text, delayMinutes, time.Now())
}

// writeAt is Write with an injectable timestamp for tests.
func (s *Store) writeAt(text string, delayMinutes float64, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating note directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(headerPrefix)
	b.WriteString(now.Format(time.UnixDate))
	b.WriteString(headerSuffix)
	b.WriteString("\n")
	b.WriteString(delayPrefix)
	b.WriteString(formatDelay(delayMinutes))
	b.WriteString(delaySuffix)
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n")

	if err := util.AtomicWriteFile(s.Path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing note file: %w", err)
	}
	return nil
}

// Read parses the note file back. The note text round-trips verbatim,
// including embedded newlines.
func (s *Store) Read() (*Note, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading note file: %w", err)
	}
	return parse(string(data))
}

// Exists reports whether a note has been written.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// formatDelay renders a fractional delay without trailing zeros, so whole
// minutes read as "3" rather than "3.000000".
func formatDelay(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

func parse(content string) (*Note, error) {
	lines := strings.SplitN(content, "\n", 4)
	if len(lines) < 4 {
		return nil, fmt.Errorf("note file too short: %d lines", len(lines))
	}

	header, delayLine, blank, rest := lines[0], lines[1], lines[2], lines[3]

	if !strings.HasPrefix(header, headerPrefix) || !strings.HasSuffix(header, headerSuffix) {
		return nil, fmt.Errorf("malformed note header: %q", header)
	}
	if blank != "" {
		return nil, fmt.Errorf("expected blank separator, got %q", blank)
	}

	n := &Note{}

	// Timestamp is display metadata; parse best-effort.
	stamp := strings.TrimSuffix(strings.TrimPrefix(header, headerPrefix), headerSuffix)
	if t, err := time.Parse(time.UnixDate, stamp); err == nil {
		n.CreatedAt = t
	}

	if !strings.HasPrefix(delayLine, delayPrefix) || !strings.HasSuffix(delayLine, delaySuffix) {
		return nil, fmt.Errorf("malformed delay line: %q", delayLine)
	}
	delay, err := strconv.ParseFloat(
		strings.TrimSuffix(strings.TrimPrefix(delayLine, delayPrefix), delaySuffix), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing delay: %w", err)
	}
	n.DelayMinutes = delay

	// Write appends one trailing newline after the note text.
	n.Text = strings.TrimSuffix(rest, "\n")

	return n, nil
}
