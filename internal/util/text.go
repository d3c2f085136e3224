package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth truncates s to fit within maxWidth terminal cells,
// appending an ellipsis when content is dropped. Width is measured in
// display cells so wide (CJK) runes count as two.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TailLines returns the last n lines of s, dropping trailing empty lines
// first so a final newline does not count as a line of output.
func TailLines(s string, n int) []string {
	if n <= 0 || s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// NonEmptyLines filters out lines that are blank or whitespace-only.
func NonEmptyLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
