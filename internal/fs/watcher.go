package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/goval-community/homeval/internal/logger"
)

// Op is the kind of change a watcher reports.
type Op int

const (
	OpModify Op = iota + 1
	OpCreate
	OpRemove
	OpRename
)

func (o Op) String() string {
	switch o {
	case OpModify:
		return "modify"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is a debounced change to a watched file. Path is the path as passed
// to Add.
type Event struct {
	Path string
	Op   Op
}

// Watcher reports debounced changes to individual files. It watches the
// parent directory of every file so that editors replacing a file via
// rename are still observed. Writes that leave the content unchanged are
// suppressed using a content fingerprint.
type Watcher struct {
	w        *fsnotify.Watcher
	debounce time.Duration
	handler  func(Event)
	log      *logger.Logger

	mu           sync.Mutex
	files        map[string]string // abs path -> path as added
	dirs         map[string]int    // watched dir -> number of files in it
	fingerprints map[string]uint64
	timers       map[string]*time.Timer
	pending      map[string]Op
	closed       bool

	stop chan struct{}
	done chan struct{}
}

// NewWatcher starts a watcher that calls handler at most once per debounce
// window per file. handler runs on a timer goroutine.
func NewWatcher(debounce time.Duration, handler func(Event)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		w:            fw,
		debounce:     debounce,
		handler:      handler,
		log:          logger.Named("fswatch"),
		files:        make(map[string]string),
		dirs:         make(map[string]int),
		fingerprints: make(map[string]uint64),
		timers:       make(map[string]*time.Timer),
		pending:      make(map[string]Op),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go w.watchFiles()
	return w, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("watcher is closed")
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = path
	if fp, ok := fingerprint(abs); ok {
		w.fingerprints[abs] = fp
	}
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[abs]; !ok {
		return nil
	}
	delete(w.files, abs)
	delete(w.fingerprints, abs)
	if t, ok := w.timers[abs]; ok {
		t.Stop()
		delete(w.timers, abs)
		delete(w.pending, abs)
	}
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if !w.closed {
			return w.w.Remove(dir)
		}
	}
	return nil
}

// Close stops the watcher and cancels pending notifications.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = nil
	w.mu.Unlock()

	close(w.stop)
	err := w.w.Close()
	<-w.done
	return err
}

func (w *Watcher) watchFiles() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			w.record(event)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Error("filesystem watcher error: %v", err)
		}
	}
}

func (w *Watcher) record(event fsnotify.Event) {
	var op Op
	switch {
	case event.Has(fsnotify.Remove):
		op = OpRemove
	case event.Has(fsnotify.Rename):
		op = OpRename
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	default:
		return
	}

	abs := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if _, ok := w.files[abs]; !ok {
		return
	}

	// the last event in a burst wins, except that a create followed by
	// writes is reported as a create
	if prev, ok := w.pending[abs]; !ok || prev != OpCreate || op == OpRemove {
		w.pending[abs] = op
	}
	if t, ok := w.timers[abs]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[abs] = time.AfterFunc(w.debounce, func() { w.fire(abs) })
}

func (w *Watcher) fire(abs string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	op := w.pending[abs]
	path, watched := w.files[abs]
	delete(w.pending, abs)
	delete(w.timers, abs)

	if !watched {
		w.mu.Unlock()
		return
	}

	switch op {
	case OpModify, OpCreate:
		fp, ok := fingerprint(abs)
		if !ok {
			w.mu.Unlock()
			return
		}
		if prev, seen := w.fingerprints[abs]; seen && prev == fp {
			w.mu.Unlock()
			return
		}
		w.fingerprints[abs] = fp
		if op == OpCreate {
			// a replace-by-rename shows up as create, report it as a change
			op = OpModify
		}
	default:
		delete(w.fingerprints, abs)
	}
	w.mu.Unlock()

	w.log.Debug("%s %s", op, path)
	w.handler(Event{Path: path, Op: op})
}

func fingerprint(path string) (uint64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(data), true
}
