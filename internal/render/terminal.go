package render

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// TermPreview renders markdown as styled ANSI text for the TUI preview
// pane. Failures degrade to inline placeholder text, matching the read
// surface's non-fatal error policy.
func TermPreview(content string, wrap int) string {
	if wrap <= 0 {
		wrap = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "Error rendering markdown"
	}

	out, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown"
	}

	return out
}
