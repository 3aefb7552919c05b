// Package browser is the quick-access surface: vault tree list, search
// filter, debounced markdown preview, and an inline editor with auto-save.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/vaultray/internal/cache"
	"github.com/Paintersrp/vaultray/internal/constants"
	"github.com/Paintersrp/vaultray/internal/obsidian"
	"github.com/Paintersrp/vaultray/internal/render"
	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/internal/vault"
)

const maxCachedPreviews = 64

type refreshMsg struct{}

type previewTickMsg struct {
	gen int
}

type Model struct {
	state *state.State
	list  list.Model
	keys  *browserKeyMap

	filter    textinput.Model
	filtering bool

	editor  *editorSession
	editing bool

	forest     []*vault.FileNode
	preview    string
	previewGen int
	cache      *cache.PreviewCache

	refresh     chan struct{}
	unsubscribe func()

	width  int
	height int
	status string
}

func NewModel(s *state.State) (*Model, error) {
	current, err := s.RequireVault()
	if err != nil {
		return nil, err
	}

	keys := newBrowserKeyMap()

	filter := textinput.New()
	filter.Placeholder = "filter notes"
	filter.Prompt = "/ "

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = fmt.Sprintf("Vault: %s", current.Name())
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.AdditionalFullHelpKeys = keys.fullHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.openNote, keys.editNote, keys.startFilter}
	}

	refresh := make(chan struct{}, 1)
	unsubscribe := s.Notifier.Subscribe(func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})

	m := &Model{
		state:       s,
		list:        l,
		keys:        keys,
		filter:      filter,
		cache:       cache.NewPreviewCache(maxCachedPreviews),
		refresh:     refresh,
		unsubscribe: unsubscribe,
	}
	m.editor = newEditorSession(s.Handler, s.Scheduler, constants.AutoSaveDebounce, s.Notifier.Publish)
	m.reload()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenRefresh(), m.schedulePreview())
}

// listenRefresh blocks on the notifier channel and re-arms itself after
// every delivered refresh.
func (m *Model) listenRefresh() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.refresh; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize((msg.Width-h)/2, msg.Height-v-2)
		m.editor.setSize(msg.Width-h, msg.Height-v-3)
		return m, nil

	case refreshMsg:
		m.reload()
		return m, tea.Batch(m.listenRefresh(), m.schedulePreview())

	case previewTickMsg:
		if msg.gen == m.previewGen {
			m.renderPreview()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.editing:
			return m.updateEditor(msg)
		case m.filtering:
			return m.updateFilter(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.startFilter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.clearFilter):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
		return m, m.schedulePreview()

	case key.Matches(msg, m.keys.refresh):
		m.reload()
		return m, m.schedulePreview()

	case key.Matches(msg, m.keys.openNote):
		if node := m.selectedFile(); node != nil {
			uri := obsidian.OpenURI(m.state.CurrentVault().Name(), node.RelPath)
			if err := obsidian.Launch(uri); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("Opened %s in Obsidian", node.Name)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.editNote):
		if node := m.selectedFile(); node != nil {
			if err := m.editor.open(node.Path); err != nil {
				m.status = fmt.Sprintf("Cannot edit %s: %v", node.Name, err)
				return m, nil
			}
			m.editing = true
			return m, m.editor.focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.htmlPreview):
		if node := m.selectedFile(); node != nil {
			m.status = m.openHTMLPreview(node)
		}
		return m, nil
	}

	previous := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != previous {
		return m, tea.Batch(cmd, m.schedulePreview())
	}
	return m, cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, m.schedulePreview()
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, m.schedulePreview()
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
		return m, tea.Batch(cmd, m.schedulePreview())
	}
	return m, cmd
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.flush()
		m.editor.blur()
		m.editing = false
		m.status = "Saved"
		return m, m.schedulePreview()
	case "ctrl+c":
		m.editor.flush()
		m.unsubscribe()
		return m, tea.Quit
	}

	return m, m.editor.update(msg)
}

// reload rebuilds the tree from scratch and reapplies the active filter.
// The old tree is discarded wholesale; there is no incremental diffing.
func (m *Model) reload() {
	v := m.state.CurrentVault()
	if v == nil {
		m.forest = nil
		m.list.SetItems(nil)
		return
	}

	m.forest = vault.LoadTree(v.Root())
	m.applyFilter()
}

func (m *Model) applyFilter() {
	query := m.filter.Value()
	results := vault.Search(m.forest, query)
	items := itemsFromForest(results, query != "")

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	m.list.SetItems(listItems)
}

func (m *Model) selectedFile() *vault.FileNode {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok || item.Node().IsDir {
		return nil
	}
	return item.Node()
}

// schedulePreview arms the hover debounce: the preview renders only if the
// selection is still current when the delay elapses.
func (m *Model) schedulePreview() tea.Cmd {
	m.previewGen++
	gen := m.previewGen
	return tea.Tick(constants.PreviewDebounce, func(time.Time) tea.Msg {
		return previewTickMsg{gen: gen}
	})
}

func (m *Model) renderPreview() {
	node := m.selectedFile()
	if node == nil {
		m.preview = ""
		return
	}

	info, err := os.Stat(node.Path)
	if err == nil {
		if cached, ok := m.cache.Get(node.Path, info.ModTime()); ok {
			m.preview = cached
			return
		}
	}

	content, err := m.state.Handler.ReadNote(node.Path)
	if err != nil {
		m.preview = "Error reading file"
		return
	}

	rendered := render.TermPreview(content, m.width/2)
	m.preview = rendered
	if info != nil {
		m.cache.Put(node.Path, info.ModTime(), rendered)
	}
}

// openHTMLPreview writes the themed HTML document to a temp file and hands
// it to the platform opener, the terminal stand-in for the webview surface.
func (m *Model) openHTMLPreview(node *vault.FileNode) string {
	content, err := m.state.Handler.ReadNote(node.Path)
	if err != nil {
		return fmt.Sprintf("Cannot preview %s: %v", node.Name, err)
	}

	doc := m.state.Renderer.Document(node.Name, content)
	out := filepath.Join(os.TempDir(), "vaultray-preview.html")
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Sprintf("Cannot write preview: %v", err)
	}

	if err := obsidian.Launch(out); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Preview of %s opened", node.Name)
}

func (m *Model) View() string {
	if m.editing {
		return appStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(m.editor.header()),
			m.editor.view(),
			helpStyle.Render("esc to close (saves) · edits auto-save after a quiet second"),
		))
	}

	left := listStyle.Render(m.list.View())
	right := previewStyle.Render(m.preview)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	rows := []string{body}
	if m.filtering || m.filter.Value() != "" {
		rows = append([]string{filterStyle.Render(m.filter.View())}, rows...)
	}
	if m.status != "" {
		rows = append(rows, statusStyle.Render(m.status))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Run drives the browser to completion.
func Run(s *state.State) error {
	m, err := NewModel(s)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
