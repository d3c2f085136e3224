package output

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	t.Parallel()
	var buf strings.Builder

	tbl := NewTable(&buf, "SESSION", "WINDOWS")
	tbl.AddRow("tmux-orc", "1")
	tbl.AddRow("development-environment", "3")
	tbl.Render()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header, separator, and 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "SESSION") || !strings.Contains(lines[0], "WINDOWS") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "-------") {
		t.Errorf("separator = %q", lines[1])
	}

	// Columns widen to the longest cell.
	if !strings.Contains(lines[3], "development-environment  3") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTable_ShortRowPadsEmpty(t *testing.T) {
	t.Parallel()
	var buf strings.Builder

	tbl := NewTable(&buf, "A", "B")
	tbl.AddRow("only")
	tbl.Render()

	if !strings.Contains(buf.String(), "only") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatter(t *testing.T) {
	t.Parallel()
	var buf strings.Builder

	f := NewFormatter(&buf)
	f.Text("count: %d", 3)
	f.Line()
	f.Textln("done")

	want := "count: 3\ndone\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
