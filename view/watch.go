package view

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// evictOps are the file events that invalidate a cached tree.
const evictOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher evicts cached parse trees of files that change under a
// service's search path.
type Watcher struct {
	watcher *fsnotify.Watcher
	svc     *Service
}

// NewWatcher starts watching every directory below the search path of s.
// Directories that do not exist are skipped. Call [Watcher.Run] to process
// events.
func NewWatcher(s *Service) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{watcher: fw, svc: s}

	for _, dir := range s.dirs {
		if err := w.addTree(dir); err != nil {
			_ = fw.Close()

			return nil, err
		}
	}

	return w, nil
}

// addTree watches root and its subdirectories.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				w.svc.logger.Debug("views directory skipped",
					slog.String("dir", root), slog.Any("error", err))

				return fs.SkipDir
			}

			return err
		}

		if !d.IsDir() {
			return nil
		}

		return w.watcher.Add(p)
	})
}

// Run processes events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	cache := w.svc.engine.Cache()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&evictOps == 0 {
				continue
			}

			path := filepath.Clean(event.Name)

			if event.Has(fsnotify.Create) {
				if err := w.addTree(path); err != nil {
					w.svc.logger.DebugContext(ctx, "watch new path",
						slog.String("path", path), slog.Any("error", err))
				}
			}

			evicted := cache.Evict(path)

			w.svc.logger.DebugContext(ctx, "template changed",
				slog.String("path", path),
				slog.String("op", event.Op.String()),
				slog.Bool("evicted", evicted))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.svc.logger.WarnContext(ctx, "watch error", slog.Any("error", err))
		}
	}
}

// Watch evicts cached trees of changed files until ctx is done.
func (s *Service) Watch(ctx context.Context) error {
	w, err := NewWatcher(s)
	if err != nil {
		return ErrWatch.Wrap(err)
	}

	return w.Run(ctx)
}
