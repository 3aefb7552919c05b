package vault

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.Und, collate.IgnoreCase)

// SortForest returns a display-ordered copy of the forest: directories
// before files, then names compared case-insensitively with locale-aware
// collation. Children are sorted recursively; the input is left untouched.
func SortForest(nodes []*FileNode) []*FileNode {
	sorted := make([]*FileNode, len(nodes))
	copy(sorted, nodes)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir != sorted[j].IsDir {
			return sorted[i].IsDir
		}
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	for i, node := range sorted {
		if !node.IsDir || len(node.Children) == 0 {
			continue
		}
		clone := *node
		clone.Children = SortForest(node.Children)
		sorted[i] = &clone
	}

	return sorted
}

// Flatten collapses the forest depth-first into files only; directories
// become transparent.
func Flatten(nodes []*FileNode) []*FileNode {
	var files []*FileNode
	for _, node := range nodes {
		if node.IsDir {
			files = append(files, Flatten(node.Children)...)
			continue
		}
		files = append(files, node)
	}
	return files
}

// Search applies the quick-filter policy. An empty query restores the
// unflattened display sort. A non-empty query flattens the forest to files
// and keeps those whose lowercased name contains every whitespace-delimited
// lowercased term, in any order, sorted by name alone.
func Search(nodes []*FileNode, query string) []*FileNode {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return SortForest(nodes)
	}

	var matches []*FileNode
	for _, file := range Flatten(nodes) {
		if matchesAllTerms(file.Name, terms) {
			matches = append(matches, file)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return collator.CompareString(matches[i].Name, matches[j].Name) < 0
	})

	return matches
}

func matchesAllTerms(name string, terms []string) bool {
	lowered := strings.ToLower(name)
	for _, term := range terms {
		if !strings.Contains(lowered, term) {
			return false
		}
	}
	return true
}
