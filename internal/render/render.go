// Package render turns raw vault markdown into displayable output: a themed
// HTML document for the browser surface and ANSI text for the TUI preview
// pane. Tables and task-list checkboxes are expanded ahead of conversion
// because the underlying converter handles neither the way the vault
// expects.
package render

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts preprocessed markdown to HTML. It is stateless and safe
// to share across calls.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Typographer),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Fragment runs the full preprocessing pipeline and converts the result to
// an HTML fragment. Conversion failure yields an empty fragment, never an
// error. Task items expand first: their line numbers must be counted against
// the raw document so each checkbox addresses the source line the toggle
// write-back edits, and the table stage changes the line count. The task
// stage preserves line count and table rows never match the bullet-plus-
// marker pattern, so the order only matters for numbering.
func (r *Renderer) Fragment(source string) string {
	expanded := ExpandTables(ExpandTaskItems(source))

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(expanded), &buf); err != nil {
		log.Printf("render: markdown conversion failed: %v", err)
		return ""
	}

	return buf.String()
}

// Document renders source and wraps it in the complete themed HTML page.
func (r *Renderer) Document(title, source string) string {
	return wrapDocument(title, r.Fragment(source))
}
