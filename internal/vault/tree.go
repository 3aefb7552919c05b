package vault

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/vaultray/internal/pathutil"
)

// FileNode is one filesystem entry inside a vault tree. Identity values are
// unique within a single load pass and are regenerated on every reload.
type FileNode struct {
	ID       int
	Name     string
	Path     string
	RelPath  string
	IsDir    bool
	Children []*FileNode
}

type treeLoader struct {
	nextID int
}

// LoadTree enumerates the vault root into a FileNode forest. Directories
// whose name starts with a dot are skipped along with their entire subtree.
// Enumeration failures are logged and isolated: the failing directory keeps
// its node but yields no children, and a root failure yields an empty
// forest. The returned order is filesystem enumeration order; sorting is a
// display concern.
func LoadTree(root string) []*FileNode {
	l := &treeLoader{nextID: 1}
	return l.loadDir(pathutil.NormalizePath(root), "")
}

func (l *treeLoader) loadDir(dir, rel string) []*FileNode {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("vault: failed to read directory %s: %v", dir, err)
		return nil
	}

	var nodes []*FileNode
	for _, entry := range entries {
		name := entry.Name()
		isDir := entry.IsDir()
		if isDir && strings.HasPrefix(name, ".") {
			continue
		}

		node := &FileNode{
			ID:      l.nextID,
			Name:    name,
			Path:    filepath.Join(dir, name),
			RelPath: pathutil.RelativeJoin(rel, name),
			IsDir:   isDir,
		}
		l.nextID++

		if isDir {
			node.Children = l.loadDir(node.Path, node.RelPath)
		}

		nodes = append(nodes, node)
	}

	return nodes
}
