package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/util"
)

// Workspace holds the workspace roots and drives the background indexer
// that pre-warms the incremental store with on-disk .vim files.
type Workspace struct {
	roots []util.Path
	mu    sync.Mutex

	// Set once when the initial scan finishes; never reverts.
	indexingComplete atomic.Bool
}

// SetRoots installs the workspace roots captured at initialize time.
func (w *Workspace) SetRoots(roots []util.Path) {
	w.mu.Lock()
	w.roots = roots
	w.mu.Unlock()
}

// Roots returns a copy of the workspace roots.
func (w *Workspace) Roots() []util.Path {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]util.Path{}, w.roots...)
}

// IndexingComplete reports whether the initial scan has finished.
// Cross-file queries return partial results until it does.
func (w *Workspace) IndexingComplete() bool {
	return w.indexingComplete.Load()
}

// Index scans every root for .vim files and inserts them into the store,
// triggering symbol extraction. Runs once per session on its own goroutine;
// no cancellation, the scan runs to completion.
func (w *Workspace) Index(store *Store) {
	roots := w.Roots()

	var (
		filesMu sync.Mutex
		files   []util.Path
	)
	var g errgroup.Group
	for _, root := range roots {
		g.Go(func() error {
			found := scanDirectory(root)
			filesMu.Lock()
			files = append(files, found...)
			filesMu.Unlock()
			return nil
		})
	}
	g.Wait()

	logging.Logger.Info("indexing: starting", "files", len(files))

	for _, path := range files {
		uri := util.Path2URI(path)
		if store.Contains(uri) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			// Unreadable files are skipped silently.
			continue
		}
		store.GetSymbols(uri, string(content))
	}

	w.indexingComplete.Store(true)
	logging.Logger.Info("indexing: complete", "files", len(files))
}

// scanDirectory recursively lists .vim files under dir, skipping hidden
// directories and common build/output directories.
func scanDirectory(dir util.Path) []util.Path {
	var files []util.Path
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "target") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".vim") {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// Watch keeps the incremental store in sync with on-disk changes after the
// initial scan. Best-effort: any watcher error just ends the watch.
func (w *Workspace) Watch(ctx context.Context, store *Store) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Logger.Error("watcher setup failed", "error", err)
		return
	}
	defer watcher.Close()

	for _, root := range w.Roots() {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "target") {
					return filepath.SkipDir
				}
				watcher.Add(path)
			}
			return nil
		})
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".vim") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				content, err := os.ReadFile(event.Name)
				if err != nil {
					continue
				}
				store.GetSymbols(util.Path2URI(event.Name), string(content))
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
