// Package tasks implements the checkbox round-trip for rendered task lists.
package tasks

import (
	"strings"

	"github.com/Paintersrp/vaultray/internal/handler"
)

// Toggle rewrites the checkbox marker on the addressed zero-based line and
// writes the whole file back. The file is re-read fresh so the edit applies
// to current on-disk content, not whatever was rendered. Only the first
// marker on the line is touched; a line holding several bracket markers gets
// its first one toggled no matter which rendered checkbox was clicked.
// Out-of-range line numbers leave the file unchanged.
func Toggle(h *handler.FileHandler, path string, line int, checked bool) error {
	content, err := h.ReadNote(path)
	if err != nil {
		return err
	}

	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return nil
	}

	updated := toggleLine(lines[line], checked)
	if updated == lines[line] {
		return nil
	}

	lines[line] = updated
	return h.WriteNote(path, strings.Join(lines, "\n"))
}

func toggleLine(line string, checked bool) string {
	if checked {
		return strings.Replace(line, "[ ]", "[x]", 1)
	}

	// Clearing accepts either checked casing; whichever appears first on
	// the line wins.
	lower := strings.Index(line, "[x]")
	upper := strings.Index(line, "[X]")
	switch {
	case lower == -1 && upper == -1:
		return line
	case lower == -1 || (upper != -1 && upper < lower):
		return strings.Replace(line, "[X]", "[ ]", 1)
	default:
		return strings.Replace(line, "[x]", "[ ]", 1)
	}
}
