package daemon

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// Watcher follows the content root with fsnotify and forwards change
// notifications into the debouncer. fsnotify does not watch recursively, so
// every subdirectory gets its own watch, and directories created while
// running are added on the fly.
type Watcher struct {
	root      string
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
}

// NewWatcher creates a watcher over root, registering all existing
// subdirectories. Dot-prefixed directories are skipped, matching page
// discovery.
func NewWatcher(root string, debouncer *Debouncer) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{root: root, fsWatcher: fsWatcher, debouncer: debouncer}
	if err := w.addRecursive(root); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// Run forwards filesystem events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer func() { _ = w.fsWatcher.Close() }()

	slog.Info("Watching content root", logfields.Path(w.root))

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return
	}

	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				slog.Warn("Failed to watch new directory",
					logfields.Path(event.Name), logfields.Error(err))
			}
		}
	}

	if event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		slog.Debug("Content change detected",
			logfields.Path(event.Name),
			slog.String("op", event.Op.String()))
		w.debouncer.Request(event.Op.String() + " " + event.Name)
	}
}
