// Package watch observes a deck source on disk and coalesces file events
// into reload signals for the UI.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"deckview/internal/infra/logx"
)

// debounce is how long the watcher waits for the filesystem to settle
// before signalling a reload. Editors tend to fire several events per save.
const debounce = 150 * time.Millisecond

type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan struct{}
}

// New watches the deck at path (a directory of slides, or a single file's
// parent directory) and starts delivering change signals.
func New(path string) (*Watcher, error) {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one signal per settled burst of deck file events. The
// channel closes when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) loop() {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !Relevant(ev.Name, ev.Op) {
				continue
			}
			logx.Debugf("deck change: %s %s", ev.Op, ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logx.Warnf("watch: %v", err)
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // a signal is already pending
			}
		}
	}
}

// Relevant reports whether a filesystem event affects the deck: markdown
// slides and the deck.yaml metadata count, editor temp files and anything
// else do not.
func Relevant(name string, op fsnotify.Op) bool {
	if op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(name)
	if base == "deck.yaml" {
		return true
	}
	if strings.HasPrefix(base, ".") {
		return false
	}
	return filepath.Ext(base) == ".md"
}
