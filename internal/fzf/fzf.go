// Package fzf wraps interactive fuzzy selection of vault notes.
package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/vaultray/internal/handler"
	"github.com/Paintersrp/vaultray/internal/render"
	"github.com/Paintersrp/vaultray/internal/vault"
)

type FuzzyFinder struct {
	handler *handler.FileHandler
	Header  string
	files   []*vault.FileNode
}

func NewFuzzyFinder(h *handler.FileHandler, header string) *FuzzyFinder {
	return &FuzzyFinder{handler: h, Header: header}
}

// Pick loads the current tree and returns the vault-relative path of the
// selected note.
func (f *FuzzyFinder) Pick(query string) (string, error) {
	forest := vault.LoadTree(f.handler.VaultDir())
	f.files = vault.Flatten(vault.SortForest(forest))
	if len(f.files) == 0 {
		return "", fmt.Errorf("vault has no files")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.preview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.files, func(i int) string {
		return f.files[i].RelPath
	}, options...)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no file selected")
		}
		return "", err
	}

	return f.files[idx].RelPath, nil
}

func (f *FuzzyFinder) preview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := f.handler.ReadNote(f.files[i].Path)
	if err != nil {
		return "Error reading file"
	}

	return render.TermPreview(content, w)
}
