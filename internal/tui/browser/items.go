package browser

import (
	"strings"

	"github.com/Paintersrp/vaultray/internal/vault"
)

// ListItem adapts a FileNode for the list pane.
type ListItem struct {
	node  *vault.FileNode
	depth int
}

func (i ListItem) Title() string {
	indent := strings.Repeat("  ", i.depth)
	if i.node.IsDir {
		return indent + i.node.Name + "/"
	}
	return indent + i.node.Name
}

func (i ListItem) Description() string {
	if i.node.IsDir {
		return "directory"
	}
	return i.node.RelPath
}

// FilterValue exists to satisfy list.Item; the quick filter is applied by
// rebuilding the item set from the tree, not by the list widget.
func (i ListItem) FilterValue() string {
	return i.node.Name
}

func (i ListItem) Node() *vault.FileNode {
	return i.node
}

// itemsFromForest walks a display-sorted forest into indented rows, or a
// flat result list when a query is active.
func itemsFromForest(nodes []*vault.FileNode, flat bool) []ListItem {
	var items []ListItem
	if flat {
		for _, node := range nodes {
			items = append(items, ListItem{node: node})
		}
		return items
	}

	var walk func(nodes []*vault.FileNode, depth int)
	walk = func(nodes []*vault.FileNode, depth int) {
		for _, node := range nodes {
			items = append(items, ListItem{node: node, depth: depth})
			if node.IsDir {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)

	return items
}
