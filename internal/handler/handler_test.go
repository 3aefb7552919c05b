package handler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadNoteNormalizesCRLF(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\nthree"), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	h := NewFileHandler(root)
	got, err := h.ReadNote(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "one\ntwo\nthree" {
		t.Fatalf("CRLF not normalized: %q", got)
	}
}

func TestWriteNoteReplacesContents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	h := NewFileHandler(root)
	if err := h.WriteNote(path, "new"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("contents not replaced: %q", data)
	}
}

func TestWriteNoteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")

	h := NewFileHandler(root)
	if err := h.WriteNote(path, "content"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Fatalf("staging file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the note, got %d entries", len(entries))
	}
}

func TestAbsResolvesVaultRelativePaths(t *testing.T) {
	root := t.TempDir()
	h := NewFileHandler(root)

	got := h.Abs("sub/note.md")
	want := filepath.Join(root, "sub", "note.md")
	if got != want {
		t.Fatalf("Abs = %q, want %q", got, want)
	}
}
