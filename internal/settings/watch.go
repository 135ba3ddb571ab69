package settings

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-loads a settings file on every write and atomically swaps the
// table a caller reads via Current. Grounded on the project file watcher's
// fsnotify event loop, scoped down from many watched paths to one.
type Watcher struct {
	mu      sync.RWMutex
	path    string
	current Table

	fsw     *fsnotify.Watcher
	closeCh chan struct{}
	wg      sync.WaitGroup

	// OnChange, if set before Watch starts, is invoked with the freshly
	// loaded table after each successful reload. It runs on the watcher's
	// own goroutine.
	OnChange func(Table)
}

// NewWatcher loads path once and returns a Watcher ready to start watching
// it for further changes.
func NewWatcher(path string) (*Watcher, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, current: t}, nil
}

// Current returns the most recently loaded table.
func (w *Watcher) Current() Table {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Watch starts watching the settings file for writes. It is a no-op if
// already watching.
func (w *Watcher) Watch() error {
	if w.fsw != nil {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.path); err != nil {
		_ = fsw.Close()
		return err
	}
	w.fsw = fsw
	w.closeCh = make(chan struct{})
	w.wg.Add(1)
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() {
	t, err := Load(w.path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.current = t
	w.mu.Unlock()
	if w.OnChange != nil {
		w.OnChange(t)
	}
}

// Close stops watching. Safe to call even if Watch was never called.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	close(w.closeCh)
	w.wg.Wait()
	return w.fsw.Close()
}
