// Package watch re-runs a handler over text files in a directory as they are
// created or modified.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/fsnotify.v1"

	"github.com/coolbeans/phcite/pkg/logging"
)

// Handler processes one changed file. A returned error is logged and the
// watch continues.
type Handler func(ctx context.Context, path string) error

// Options configures a Watcher.
type Options struct {
	// Extensions restricts the watch to files with these suffixes, e.g.
	// ".txt". Empty means every file.
	Extensions []string

	// Debounce is how long a file must stay quiet before the handler runs.
	Debounce time.Duration

	Logger logging.Logger
}

// Watcher watches one directory.
type Watcher struct {
	dir      string
	exts     map[string]bool
	debounce time.Duration
	log      logging.Logger
	handler  Handler
}

// New returns a Watcher over dir. The directory must exist.
func New(dir string, handler Handler, opts Options) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watching %s: not a directory", dir)
	}

	w := &Watcher{
		dir:      dir,
		exts:     make(map[string]bool),
		debounce: opts.Debounce,
		log:      opts.Logger,
		handler:  handler,
	}
	for _, ext := range opts.Extensions {
		w.exts[strings.ToLower(ext)] = true
	}
	if w.debounce <= 0 {
		w.debounce = 100 * time.Millisecond
	}
	if w.log == nil {
		w.log = logging.NewNopLogger()
	}
	return w, nil
}

// Matches reports whether path has one of the watched extensions.
func (w *Watcher) Matches(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return w.exts[strings.ToLower(filepath.Ext(path))]
}

// Scan returns the matching regular files already in the directory, sorted
// by name.
func (w *Watcher) Scan() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", w.dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !w.Matches(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(w.dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run blocks until ctx is done, calling the handler for each created or
// written file once it has been quiet for the debounce period.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}
	w.log.Info("watching", logging.String("dir", w.dir), logging.Duration("debounce", w.debounce))

	ticker := time.NewTicker(w.tickInterval())
	defer ticker.Stop()

	pending := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.Matches(event.Name) {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Write == fsnotify.Write:
				pending[event.Name] = time.Now()

			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				delete(pending, event.Name)
				w.log.Debug("file removed", logging.String("path", event.Name))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", logging.Err(err))

		case now := <-ticker.C:
			w.flush(ctx, pending, now)
		}
	}
}

// minTick bounds how often pending files are checked.
const minTick = 5 * time.Millisecond

func (w *Watcher) tickInterval() time.Duration {
	if tick := w.debounce / 2; tick > minTick {
		return tick
	}
	return minTick
}

func (w *Watcher) flush(ctx context.Context, pending map[string]time.Time, now time.Time) {
	var ready []string
	for path, seen := range pending {
		if now.Sub(seen) >= w.debounce {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)

	for _, path := range ready {
		delete(pending, path)
		if err := w.handler(ctx, path); err != nil {
			w.log.Error("handling file", logging.String("path", path), logging.Err(err))
		}
	}
}
