package site

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/loamtools/loam/errors"
	"github.com/loamtools/loam/logging"
)

// Watcher watches the content directory for changes and triggers a
// reload callback. Rapid bursts of file events (editor save + rename)
// are debounced into a single reload.
type Watcher struct {
	watcher    *fsnotify.Watcher
	dir        string
	debounce   time.Duration
	onReload   func()
	logger     *logrus.Entry
	mu         sync.Mutex
	lastChange time.Time
	done       chan struct{}
	closeOnce  sync.Once
}

// NewWatcher creates a Watcher for the given content directory. The
// onReload callback fires on the watcher goroutine after the debounce
// window closes; callers that need to touch UI state should forward it
// into their own event loop.
func NewWatcher(dir string, debounce time.Duration, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WatchFailed(dir, err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.WatchFailed(dir, err)
	}

	// Watch immediate subdirectories too; fsnotify is not recursive.
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err == nil {
		for _, entry := range entries {
			if isDir(entry) {
				if err := fsw.Add(entry); err != nil {
					fsw.Close()
					return nil, errors.WatchFailed(entry, err)
				}
			}
		}
	}

	w := &Watcher{
		watcher:  fsw,
		dir:      dir,
		debounce: debounce,
		onReload: onReload,
		logger:   logging.NewLogger("content-watcher"),
		done:     make(chan struct{}),
	}
	return w, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// LastChange reports when the most recent relevant event arrived.
func (w *Watcher) LastChange() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastChange
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}

			w.mu.Lock()
			w.lastChange = time.Now()
			w.mu.Unlock()

			w.logger.WithFields(logrus.Fields{
				"file": event.Name,
				"op":   event.Op.String(),
			}).Debug("Content change detected")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.fire)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Content watcher error")
		}
	}
}

// relevant filters events down to markdown changes that affect the site.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".md") || isDir(event.Name)
}

func (w *Watcher) fire() {
	select {
	case <-w.done:
		return
	default:
	}
	w.logger.Debug("Reloading content")
	w.onReload()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}
