package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/vaultray/internal/pathutil"
)

// FileHandler performs whole-file reads and writes against a vault root.
type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: pathutil.NormalizePath(vaultDir)}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

// Abs resolves a vault-relative path to an absolute one.
func (h *FileHandler) Abs(rel string) string {
	return filepath.Join(h.vaultDir, filepath.FromSlash(rel))
}

// ReadNote reads the whole file as text, normalizing CRLF line endings to LF.
func (h *FileHandler) ReadNote(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// WriteNote replaces the file's entire contents with temp-then-rename
// semantics so readers never observe a partial write.
func (h *FileHandler) WriteNote(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage write: %w", err)
	}

	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
