package auth

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// SessionChangedMsg is sent to the UI after the session file changed.
type SessionChangedMsg struct{}

// WaitForSessionChange returns a command that blocks until the next change
// on events. It yields nil once the watcher is closed.
func WaitForSessionChange(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return SessionChangedMsg{}
	}
}

// Watcher reports changes to the session file made by other processes, such
// as `notedeck logout` run while the TUI is open.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
	stop    chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// WatchSession watches the directory holding path. The returned channel
// receives one value per debounced burst of changes to path.
func WatchSession(path string) (*Watcher, <-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		events:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	go w.run()
	return w, w.events, nil
}

func (w *Watcher) run() {
	defer close(w.events)
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("session watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed {
			return
		}
		select {
		case w.events <- struct{}{}:
		default:
		}
	})
}

// Close stops watching. The events channel is closed afterwards.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	close(w.stop)
	return w.watcher.Close()
}
