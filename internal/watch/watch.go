// Package watch rebuilds the site whenever the source content changes.
//
// There is deliberately no HTTP server here; watch mode only regenerates the
// output tree and the operator points whatever they like at it.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

const debounceWindow = 300 * time.Millisecond

// Run performs an initial build, then watches the posts directory, the
// static directory, and the stylesheet for changes, rebuilding after each
// burst of events. Rebuild failures are logged and watching continues; the
// operator is editing content and will fix the input. Run returns when ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config, outputDir string) error {
	gen, err := site.NewGenerator(cfg, outputDir)
	if err != nil {
		return err
	}

	if err := gen.Build(); err != nil {
		slog.Error("Initial build failed", "error", err)
	} else {
		slog.Info("Initial build complete", "output", gen.OutputDir())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watchPaths(watcher, cfg)

	rebuildReq, trigger := newDebouncer(debounceWindow)
	go rebuildWorker(ctx, gen, rebuildReq)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			// New subdirectories under static are not watched automatically.
			if event.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(event.Name); statErr == nil && fi.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// watchPaths registers the content sources. Missing paths are skipped; they
// may appear later but watching starts with what exists now.
func watchPaths(watcher *fsnotify.Watcher, cfg *config.Config) {
	if err := watcher.Add(cfg.Content.PostsDir); err != nil {
		slog.Warn("Not watching posts directory", "dir", cfg.Content.PostsDir, "error", err)
	}
	if err := addDirsRecursive(watcher, cfg.Content.StaticDir); err != nil {
		slog.Debug("Not watching static directory", "dir", cfg.Content.StaticDir, "error", err)
	}
	if cfg.Content.Stylesheet != "" {
		if _, err := os.Stat(cfg.Content.Stylesheet); err == nil {
			if err := watcher.Add(cfg.Content.Stylesheet); err != nil {
				slog.Debug("Not watching stylesheet", "path", cfg.Content.Stylesheet, "error", err)
			}
		}
	}
}

// addDirsRecursive registers dir and every subdirectory with the watcher.
func addDirsRecursive(watcher *fsnotify.Watcher, dir string) error {
	if dir == "" {
		return nil
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return os.ErrNotExist
	}
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// newDebouncer returns a buffered request channel and a trigger function
// that coalesces bursts of events into a single request per quiet window.
func newDebouncer(window time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}

	return req, trigger
}

// rebuildWorker serializes rebuilds; requests arriving mid-build are
// absorbed by the channel buffer and run once the current build finishes.
func rebuildWorker(ctx context.Context, gen *site.Generator, req <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-req:
			if !ok {
				return
			}
			slog.Info("Rebuilding site")
			if err := gen.Build(); err != nil {
				slog.Error("Rebuild failed", "error", err)
			} else {
				slog.Info("Rebuild complete", "output", gen.OutputDir())
			}
		}
	}
}
