package config

import (
	"path/filepath"
	"sync"

	"clock3d/internal/utils"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk. Only the
// latest good settings are kept; a file that fails to parse is logged and
// skipped.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Settings
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are noticed.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan Settings, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	utils.Debug("Watching settings file %s", abs)
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			utils.Warn("Settings watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		utils.Warn("Ignoring settings change in %s: %v", w.path, err)
		return
	}
	utils.Info("Reloaded settings from %s", w.path)

	// replace any update the consumer has not picked up yet
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- s:
	case <-w.done:
	}
}

// Updates delivers reloaded settings.
func (w *Watcher) Updates() <-chan Settings { return w.updates }

// Poll returns the latest reloaded settings without blocking.
func (w *Watcher) Poll() (Settings, bool) {
	select {
	case s := <-w.updates:
		return s, true
	default:
		return Settings{}, false
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
