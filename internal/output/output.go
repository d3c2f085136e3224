// Package output provides terminal output helpers: plain and styled text,
// advisory warnings, and simple aligned tables.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// colorEnabled reports whether styled output should be used on the given
// file. NO_COLOR and dumb terminals disable it; the rest is up to what the
// terminal advertises.
func colorEnabled(f *os.File) bool {
	if termenv.EnvNoColor() || termenv.EnvColorProfile() == termenv.Ascii {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintWarningf prints an advisory warning to stderr. Warnings never abort
// the operation that raised them.
func PrintWarningf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled(os.Stderr) {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Warning:"), msg)
		return
	}
	fmt.Fprintln(os.Stderr, "Warning:", msg)
}

// PrintErrorf prints an error message to stderr.
func PrintErrorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled(os.Stderr) {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), msg)
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", msg)
}

// PrintSuccessf prints a success message to stdout.
func PrintSuccessf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled(os.Stdout) {
		fmt.Println(successStyle.Render(msg))
		return
	}
	fmt.Println(msg)
}

// Dim renders s in a muted style when stdout is a terminal.
func Dim(s string) string {
	if colorEnabled(os.Stdout) {
		return dimStyle.Render(s)
	}
	return s
}

// Formatter writes plain text output to a destination writer.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a Formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{writer: w}
}

// Text outputs plain text to the formatter's writer
func (f *Formatter) Text(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format, args...)
}

// Textln outputs plain text with a newline to the formatter's writer
func (f *Formatter) Textln(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format+"\n", args...)
}

// Line outputs a blank line
func (f *Formatter) Line() {
	fmt.Fprintln(f.writer)
}
