package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("creates file with correct content", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test1.txt")
		content := []byte("hello world")

		err := AtomicWriteFile(path, content, 0644)
		if err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", string(got), string(content))
		}
	})

	t.Run("creates file with correct permissions", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test2.txt")

		err := AtomicWriteFile(path, []byte("test"), 0600)
		if err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat file: %v", err)
		}

		if mode := info.Mode().Perm(); mode&0600 != 0600 {
			t.Errorf("expected at least 0600 permissions, got %o", mode)
		}
	})

	t.Run("overwrites existing file atomically", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test3.txt")

		if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
			t.Fatalf("initial write: %v", err)
		}
		if err := AtomicWriteFile(path, []byte("replaced"), 0644); err != nil {
			t.Fatalf("overwrite: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading file: %v", err)
		}
		if string(got) != "replaced" {
			t.Errorf("content = %q, want %q", string(got), "replaced")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "test4.txt")

		if err := AtomicWriteFile(path, []byte("data"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		for _, e := range entries {
			if strings.Contains(e.Name(), ".tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("fails when directory missing", func(t *testing.T) {
		path := filepath.Join(tmpDir, "missing", "test5.txt")
		if err := AtomicWriteFile(path, []byte("data"), 0644); err == nil {
			t.Error("expected error for missing directory, got nil")
		}
	})
}
