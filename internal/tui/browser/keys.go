package browser

import "github.com/charmbracelet/bubbles/key"

type browserKeyMap struct {
	openNote    key.Binding
	editNote    key.Binding
	htmlPreview key.Binding
	startFilter key.Binding
	clearFilter key.Binding
	refresh     key.Binding
	quit        key.Binding
}

func newBrowserKeyMap() *browserKeyMap {
	return &browserKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open in Obsidian"),
		),
		editNote: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		htmlPreview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open html preview"),
		),
		startFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		clearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload vault"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m browserKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.editNote,
		m.htmlPreview,
		m.startFilter,
		m.clearFilter,
		m.refresh,
		m.quit,
	}
}
