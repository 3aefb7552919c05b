package vault_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/vaultray/internal/vault"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func collectNames(nodes []*vault.FileNode) []string {
	var names []string
	for _, node := range nodes {
		names = append(names, node.Name)
		names = append(names, collectNames(node.Children)...)
	}
	return names
}

func TestLoadTreeSkipsDotDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "note.md"))
	writeFile(t, filepath.Join(root, ".obsidian", "workspace.json"))
	writeFile(t, filepath.Join(root, "sub", ".git", "HEAD"))
	writeFile(t, filepath.Join(root, "sub", "inner.md"))

	forest := vault.LoadTree(root)

	for _, name := range collectNames(forest) {
		if name == ".obsidian" || name == ".git" || name == "workspace.json" || name == "HEAD" {
			t.Fatalf("hidden entry %q leaked into the tree", name)
		}
	}

	files := vault.Flatten(forest)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
}

func TestLoadTreeKeepsDotFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden.md"))

	files := vault.Flatten(vault.LoadTree(root))
	if len(files) != 1 || files[0].Name != ".hidden.md" {
		t.Fatalf("dot-prefixed file should survive, got %v", collectNames(files))
	}
}

func TestLoadTreeMissingRootYieldsEmptyForest(t *testing.T) {
	forest := vault.LoadTree(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(forest) != 0 {
		t.Fatalf("expected empty forest for missing root, got %d nodes", len(forest))
	}
}

func TestLoadTreeUnreadableSubdirKeepsSiblings(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readable.md"))
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "secret.md"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	forest := vault.LoadTree(root)

	var lockedNode *vault.FileNode
	var sawReadable bool
	for _, node := range forest {
		if node.Name == "locked" {
			lockedNode = node
		}
		if node.Name == "readable.md" {
			sawReadable = true
		}
	}

	if !sawReadable {
		t.Fatalf("sibling file dropped when a subdirectory failed to enumerate")
	}
	if lockedNode == nil {
		t.Fatalf("failing directory should keep its node")
	}
	if len(lockedNode.Children) != 0 {
		t.Fatalf("failing directory should have no children, got %d", len(lockedNode.Children))
	}
}

func TestLoadTreeRelPathsUseForwardSlashes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "note.md"))

	files := vault.Flatten(vault.LoadTree(root))
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].RelPath != "a/b/note.md" {
		t.Fatalf("unexpected relative path %q", files[0].RelPath)
	}
}

func TestLoadTreeAssignsUniqueIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.md"))
	writeFile(t, filepath.Join(root, "two.md"))
	writeFile(t, filepath.Join(root, "dir", "three.md"))

	seen := map[int]bool{}
	var walk func(nodes []*vault.FileNode)
	walk = func(nodes []*vault.FileNode) {
		for _, node := range nodes {
			if seen[node.ID] {
				t.Fatalf("duplicate node id %d", node.ID)
			}
			seen[node.ID] = true
			walk(node.Children)
		}
	}
	walk(vault.LoadTree(root))

	if len(seen) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(seen))
	}
}
