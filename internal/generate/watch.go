package generate

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce batches the filesystem event bursts editors produce into one
// regeneration.
const debounce = 300 * time.Millisecond

// Watch runs generation, then re-runs it whenever the schema or a fragment
// document changes, until ctx is cancelled. Failed re-runs keep the watch
// alive.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := g.watchTree(watcher, g.cfg.Fragments); err != nil {
		return err
	}
	if dir := filepath.Dir(g.cfg.Schema); dir != g.cfg.Fragments {
		// Watch the schema's directory: editors replace files on save.
		if err := watcher.Add(dir); err != nil {
			g.log.Warn("cannot watch schema directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	if err := g.Run(ctx); err != nil {
		return err
	}
	g.log.Info("watching for changes",
		zap.String("fragments", g.cfg.Fragments),
		zap.String("schema", g.cfg.Schema))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !g.underOutDir(event.Name) {
					if err := g.watchTree(watcher, event.Name); err != nil {
						g.log.Warn("cannot watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			if g.triggers(event.Name) {
				pending = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.log.Warn("watch error", zap.Error(err))
		case <-pending:
			pending = nil
			if err := g.Run(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				g.log.Error("regeneration failed, still watching", zap.Error(err))
			}
		}
	}
}

// triggers reports whether a change at path warrants regeneration: fragment
// documents and the schema do, generated output does not.
func (g *Generator) triggers(path string) bool {
	path = filepath.Clean(path)
	if g.underOutDir(path) {
		return false
	}
	if strings.HasSuffix(path, g.cfg.Suffix) {
		return true
	}
	return path == filepath.Clean(g.cfg.Schema)
}

func (g *Generator) underOutDir(path string) bool {
	rel, err := filepath.Rel(g.cfg.OutDir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (g *Generator) watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if g.underOutDir(path) {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}
