// Package tmux wraps the tmux binary as the session registry: listing
// sessions and windows, capturing pane content, and injecting keystrokes.
package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client handles tmux operations, optionally on a remote host
type Client struct {
	Remote string // "user@host" or empty for local
}

// NewClient creates a new tmux client
func NewClient(remote string) *Client {
	return &Client{Remote: remote}
}

// DefaultClient is the default local client
var DefaultClient = NewClient("")

// Run executes a tmux command and returns trimmed stdout
func (c *Client) Run(args ...string) (string, error) {
	name := "tmux"
	if c.Remote != "" {
		// Remote execution via ssh; fine for the simple commands we issue.
		args = append([]string{c.Remote, "tmux"}, args...)
		name = "ssh"
	}

	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, stderr.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunSilent executes a tmux command ignoring output
func (c *Client) RunSilent(args ...string) error {
	_, err := c.Run(args...)
	return err
}

// IsInstalled checks if tmux is available on the target host
func (c *Client) IsInstalled() bool {
	if c.Remote == "" {
		_, err := exec.LookPath("tmux")
		return err == nil
	}
	return c.RunSilent("-V") == nil
}

// EnsureInstalled returns an error if tmux is not available
func (c *Client) EnsureInstalled() error {
	if !c.IsInstalled() {
		return errors.New("tmux is not installed. Install it with: brew install tmux (macOS) or apt install tmux (Linux)")
	}
	return nil
}

// InTmux returns true if currently inside a tmux session
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// isNoServerErr reports whether err means "no tmux server / no sessions",
// which callers treat as an empty registry rather than a failure.
func isNoServerErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no server running") ||
		strings.Contains(msg, "no sessions") ||
		strings.Contains(msg, "No such file or directory") ||
		strings.Contains(msg, "error connecting to")
}
