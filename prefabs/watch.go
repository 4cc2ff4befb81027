package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Quiet period a file must see before its change is reported.
const debounce = 100 * time.Millisecond

// Watcher reports yaml files that change under the watched directories. A
// burst of writes to one file (truncate then write, for example) is reported
// once, after the last write.
type Watcher struct {
	Events chan string
	Errors chan error

	fs       *fsnotify.Watcher
	settled  chan string
	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewWatcher watches dirs (not recursively) until Close.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		fs:      fs,
		settled: make(chan string),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes Events and Errors. Changes still inside
// their quiet period are dropped.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
		close(w.stopped)
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isSpecChange(event) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(debounce)
			} else {
				timers[event.Name] = w.settleAfter(event.Name)
			}
		case path := <-w.settled:
			// A timer reset after it fired delivers again; that is a new change.
			delete(timers, path)
			select {
			case w.Events <- path:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

// settleAfter hands path back to loop once it has been quiet for debounce.
func (w *Watcher) settleAfter(path string) *time.Timer {
	return time.AfterFunc(debounce, func() {
		select {
		case w.settled <- path:
		case <-w.stop:
		}
	})
}

func isSpecChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return isSpecFile(event.Name)
}

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
