package browser

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/vaultray/internal/debounce"
	"github.com/Paintersrp/vaultray/internal/handler"
)

const autoSaveSlot = "editor.autosave"

// editorSession is the floating-editor analogue: a textarea over one note
// with debounced auto-save. Every edit cancels the pending save and arms a
// new one, so a burst of keystrokes persists exactly once, with the content
// of the last keystroke.
type editorSession struct {
	area      textarea.Model
	handler   *handler.FileHandler
	scheduler *debounce.Scheduler
	delay     time.Duration
	onSaved   func()

	// persist runs on the debounce timer goroutine while the UI loop reads
	// the dirty marker, so these fields are mutex-guarded.
	mu       sync.Mutex
	path     string
	original string
	saved    bool
}

func newEditorSession(
	h *handler.FileHandler,
	scheduler *debounce.Scheduler,
	delay time.Duration,
	onSaved func(),
) *editorSession {
	area := textarea.New()
	area.Placeholder = "..."
	area.CharLimit = 0

	return &editorSession{
		area:      area,
		handler:   h,
		scheduler: scheduler,
		delay:     delay,
		onSaved:   onSaved,
	}
}

func (s *editorSession) open(path string) error {
	content, err := s.handler.ReadNote(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.path = path
	s.original = content
	s.saved = true
	s.mu.Unlock()

	s.area.SetValue(content)
	s.area.CursorStart()
	return nil
}

func (s *editorSession) focus() tea.Cmd {
	return s.area.Focus()
}

func (s *editorSession) blur() {
	s.area.Blur()
}

func (s *editorSession) setSize(width, height int) {
	s.area.SetWidth(width)
	s.area.SetHeight(height)
}

func (s *editorSession) update(msg tea.Msg) tea.Cmd {
	before := s.area.Value()
	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)

	if s.area.Value() != before {
		s.edited()
	}
	return cmd
}

// edited re-arms the auto-save timer with a snapshot of the current
// content. Only the last snapshot of a burst survives the quiet period.
func (s *editorSession) edited() {
	content := s.area.Value()

	s.mu.Lock()
	s.saved = false
	s.mu.Unlock()

	s.scheduler.Schedule(autoSaveSlot, s.delay, func() {
		s.persist(content)
	})
}

// flush cancels any pending save and persists immediately. Used when the
// editor is dismissed.
func (s *editorSession) flush() {
	s.scheduler.Cancel(autoSaveSlot)

	s.mu.Lock()
	dirty := !s.saved
	s.mu.Unlock()

	if dirty {
		s.persist(s.area.Value())
	}
}

func (s *editorSession) persist(content string) {
	s.mu.Lock()
	path := s.path
	s.mu.Unlock()
	if path == "" {
		return
	}

	if err := s.handler.WriteNote(path, content); err != nil {
		log.Printf("editor: failed to save %s: %v", path, err)
		return
	}

	s.mu.Lock()
	s.original = content
	s.saved = true
	s.mu.Unlock()

	if s.onSaved != nil {
		s.onSaved()
	}
}

func (s *editorSession) header() string {
	s.mu.Lock()
	name := filepath.Base(s.path)
	saved := s.saved
	s.mu.Unlock()

	if saved {
		return fmt.Sprintf("Editing %s", name)
	}
	return fmt.Sprintf("Editing %s *", name)
}

func (s *editorSession) view() string {
	return s.area.View()
}
