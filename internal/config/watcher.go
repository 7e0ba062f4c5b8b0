package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chronoview/go-timeline-engine/internal/util"
)

// ReloadWatcher watches the locale and availability documents and
// invokes a callback when one of them changes, so a long-running
// presentation layer can pick up edits without restarting.
type ReloadWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
}

// NewReloadWatcher starts watching the given files. The parent
// directories are registered rather than the files themselves, because
// editors commonly replace the file on save. Empty paths are skipped.
func NewReloadWatcher(onChange func(path string), paths ...string) (*ReloadWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	rw := &ReloadWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		onChange: onChange,
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		rw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go rw.processEvents()
	return rw, nil
}

func (rw *ReloadWatcher) processEvents() {
	for {
		select {
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !rw.files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				rw.onChange(abs)
			}

		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("config watch error: " + err.Error())
		}
	}
}

// Close stops the watcher.
func (rw *ReloadWatcher) Close() error {
	return rw.watcher.Close()
}
