package store

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a single file. It watches the parent directory
// so atomic renames (temp file + rename) are seen.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	c    chan struct{}

	once sync.Once
	done chan struct{}
}

func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &Watcher{
		path: filepath.Clean(path),
		w:    fw,
		c:    make(chan struct{}, 1),
		done: make(chan struct{}),
	}, nil
}

// C receives a value after the watched file changes. Bursts coalesce.
func (w *Watcher) C() <-chan struct{} { return w.c }

func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !w.matches(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.c <- struct{}{}:
			default:
			}
		case _, ok := <-w.w.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) matches(name string) bool {
	name = filepath.Clean(name)
	if name == w.path {
		return true
	}
	// SQLite writes land in the -wal sidecar first.
	return strings.HasPrefix(name, w.path+"-")
}

// Close stops the watcher. Run returns once the underlying channels close.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.w.Close()
	})
	return err
}

// Done is closed when Run returns.
func (w *Watcher) Done() <-chan struct{} { return w.done }
