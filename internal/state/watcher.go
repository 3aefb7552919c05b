package state

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/vaultray/internal/pathutil"
)

// VaultWatcher observes the current vault root and reports external note
// changes through a callback. It pumps fsnotify events on its own goroutine
// from construction until Close; consumers typically hand it
// Notifier.Publish so external edits become refresh signals.
type VaultWatcher struct {
	watcher  *fsnotify.Watcher
	vault    string
	done     chan struct{}
	once     sync.Once
	onChange func(string)
}

func NewVaultWatcher(vault string, onChange func(string)) (*VaultWatcher, error) {
	normalized := pathutil.NormalizePath(vault)
	if normalized == "" {
		return nil, errors.New("vault directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &VaultWatcher{
		watcher:  w,
		vault:    normalized,
		done:     make(chan struct{}),
		onChange: onChange,
	}

	if err := watcher.addRecursive(normalized); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go watcher.run()

	return watcher, nil
}

func (w *VaultWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(event.Name)
					continue
				}
			}

			rel, ok := w.relevantPath(event)
			if !ok {
				continue
			}

			if w.onChange != nil {
				w.onChange(rel)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				log.Printf("watcher: %v", err)
			}
		}
	}
}

func (w *VaultWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *VaultWatcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != normalized {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

func (w *VaultWatcher) relevantPath(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}

	rel, err := pathutil.VaultRelative(w.vault, event.Name)
	if err != nil || rel == "" || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}

	if !strings.EqualFold(filepath.Ext(rel), ".md") {
		return "", false
	}

	return rel, true
}
