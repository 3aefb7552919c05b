package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's
// separator and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the vault root. The
// returned path always uses forward slashes so node identity and the
// obsidian:// file parameter stay platform agnostic.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// RelativeJoin extends a parent's vault-relative path with one more entry
// name, keeping the forward-slash convention. An empty parent yields the
// entry name itself.
func RelativeJoin(parentRel, name string) string {
	if parentRel == "" || parentRel == "." {
		return name
	}
	return parentRel + "/" + name
}
