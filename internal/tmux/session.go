package tmux

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window represents a tmux window inside a session.
type Window struct {
	Session string
	Index   int
	Name    string
	Active  bool
}

// Target returns the session:index address of the window.
func (w Window) Target() string {
	return fmt.Sprintf("%s:%d", w.Session, w.Index)
}

// Session represents a tmux session and its windows.
type Session struct {
	Name     string
	Attached bool
	Created  string
	Windows  []Window
}

// WindowInfo holds detailed information about a single window.
type WindowInfo struct {
	Name   string
	Active bool
	Panes  int
	Layout string
}

// SplitTarget splits a "session:window" address. The window part is
// optional; an empty window means "the session's current window".
func SplitTarget(target string) (session, window string, err error) {
	if target == "" {
		return "", "", fmt.Errorf("empty target")
	}
	session, window, _ = strings.Cut(target, ":")
	if session == "" {
		return "", "", fmt.Errorf("target %q has no session name", target)
	}
	return session, window, nil
}

// parseSessionLine parses one list-sessions line in the format
// name:attached:created_string. The created string may itself contain
// colons, so only the first two separators split fields.
func parseSessionLine(line string) (Session, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return Session{}, false
	}
	return Session{
		Name:     parts[0],
		Attached: parts[1] == "1",
		Created:  parts[2],
	}, true
}

// parseWindowLine parses one list-windows line in the format
// index:name:active. Window names may contain colons, so the name is
// everything between the first and last separator.
func parseWindowLine(session, line string) (Window, bool) {
	first := strings.Index(line, ":")
	last := strings.LastIndex(line, ":")
	if first == -1 || first == last {
		return Window{}, false
	}

	index, err := strconv.Atoi(line[:first])
	if err != nil {
		return Window{}, false
	}

	return Window{
		Session: session,
		Index:   index,
		Name:    line[first+1 : last],
		Active:  line[last+1:] == "1",
	}, true
}

// SessionExists checks if a session exists
func (c *Client) SessionExists(name string) bool {
	return c.RunSilent("has-session", "-t", name) == nil
}

// TargetExists checks whether a session:window address currently resolves.
// A bare session name resolves when the session exists.
func (c *Client) TargetExists(target string) bool {
	session, window, err := SplitTarget(target)
	if err != nil {
		return false
	}
	if !c.SessionExists(session) {
		return false
	}
	if window == "" {
		return true
	}

	windows, err := c.ListWindows(session)
	if err != nil {
		return false
	}
	for _, w := range windows {
		if strconv.Itoa(w.Index) == window || w.Name == window {
			return true
		}
	}
	return false
}

// ListSessions returns all tmux sessions with their windows. A missing
// tmux server yields an empty list, not an error.
func (c *Client) ListSessions() ([]Session, error) {
	output, err := c.Run("list-sessions", "-F", "#{session_name}:#{session_attached}:#{session_created_string}")
	if err != nil {
		if isNoServerErr(err) {
			return nil, nil
		}
		return nil, err
	}
	if output == "" {
		return nil, nil
	}

	var sessions []Session
	for _, line := range strings.Split(output, "\n") {
		s, ok := parseSessionLine(line)
		if !ok {
			continue
		}

		windows, err := c.ListWindows(s.Name)
		if err != nil {
			return nil, err
		}
		s.Windows = windows
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// ListWindows returns all windows in a session.
func (c *Client) ListWindows(session string) ([]Window, error) {
	output, err := c.Run("list-windows", "-t", session, "-F", "#{window_index}:#{window_name}:#{window_active}")
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, line := range strings.Split(output, "\n") {
		if w, ok := parseWindowLine(session, line); ok {
			windows = append(windows, w)
		}
	}
	return windows, nil
}

// GetWindowInfo returns detailed information about a window.
func (c *Client) GetWindowInfo(target string) (*WindowInfo, error) {
	output, err := c.Run("display-message", "-t", target, "-p",
		"#{window_name}:#{window_active}:#{window_panes}:#{window_layout}")
	if err != nil {
		return nil, err
	}

	parts := strings.Split(output, ":")
	if len(parts) < 4 {
		return nil, fmt.Errorf("unexpected window info format: %q", output)
	}

	panes, _ := strconv.Atoi(parts[2])
	return &WindowInfo{
		Name:   parts[0],
		Active: parts[1] == "1",
		Panes:  panes,
		Layout: parts[3],
	}, nil
}

// CapturePane captures the last lines of output from a target window.
func (c *Client) CapturePane(target string, lines int) (string, error) {
	return c.Run("capture-pane", "-t", target, "-p", "-S", fmt.Sprintf("-%d", lines))
}

// SendKeys types literal text into a target window without submitting it.
func (c *Client) SendKeys(target, text string) error {
	return c.RunSilent("send-keys", "-t", target, "-l", "--", text)
}

// SendSubmit sends the commit keystroke (Enter) to a target window.
func (c *Client) SendSubmit(target string) error {
	return c.RunSilent("send-keys", "-t", target, "C-m")
}

// SendCommand types a command into the target and submits it after a
// settle delay. The delay lets the receiving pane register the injected
// text before the commit keystroke arrives.
func (c *Client) SendCommand(target, command string, settle time.Duration) error {
	if err := c.SendKeys(target, command); err != nil {
		return err
	}
	if settle > 0 {
		time.Sleep(settle)
	}
	return c.SendSubmit(target)
}

// FindWindows finds windows whose name contains the query, case-insensitive,
// across all sessions.
func (c *Client) FindWindows(query string) ([]Window, error) {
	sessions, err := c.ListSessions()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []Window
	for _, s := range sessions {
		for _, w := range s.Windows {
			if strings.Contains(strings.ToLower(w.Name), q) {
				matches = append(matches, w)
			}
		}
	}
	return matches, nil
}
