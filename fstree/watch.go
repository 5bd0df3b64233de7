package fstree

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TagEvent reports that the sidecar tag file of the file at Path changed.
type TagEvent struct {
	Path string
}

// Watcher watches every directory of a Tree for sidecar tag changes.
type Watcher struct {
	w      *fsnotify.Watcher
	events chan TagEvent
	done   chan struct{}
	wg     sync.WaitGroup
	log    *zap.Logger
	once   sync.Once
}

const tagEventBuffer = 64

// Watch starts watching the directories of t. Directories that cannot be
// watched are logged and skipped.
func Watch(t *Tree, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fstree: watch: %w", err)
	}
	w := &Watcher{
		w:      fw,
		events: make(chan TagEvent, tagEventBuffer),
		done:   make(chan struct{}),
		log:    log,
	}
	w.addDir(t.Root())

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) addDir(d *Dir) {
	p := filepath.FromSlash(d.Path())
	if err := w.w.Add(p); err != nil {
		w.log.Warn("cannot watch directory", zap.String("dir", p), zap.Error(err))
	}
	for _, sub := range d.Dirs() {
		w.addDir(sub)
	}
}

// Events returns the channel of tag changes. It is closed by Close.
func (w *Watcher) Events() <-chan TagEvent { return w.events }

// Drain returns every pending event without blocking.
func (w *Watcher) Drain() []TagEvent {
	var out []TagEvent
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			p, ok := tagTarget(ev)
			if !ok {
				continue
			}
			select {
			case w.events <- TagEvent{Path: p}:
			case <-w.done:
				return
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// tagTarget maps a filesystem event on a sidecar to the path of the file it
// tags, using forward slashes.
func tagTarget(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return "", false
	}
	dir, name := filepath.Split(ev.Name)
	target, ok := SidecarTarget(name)
	if !ok {
		return "", false
	}
	return filepath.ToSlash(filepath.Join(dir, target)), true
}

// Close stops the watcher and closes the Events channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
		w.wg.Wait()
	})
	return err
}
