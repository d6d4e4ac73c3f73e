package emit

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer renders factories as they resolve and defers filesystem writes to
// Flush. Queued artifacts are independent, so Flush writes them concurrently
// under a worker limit.
type Writer struct {
	outDir  string
	opts    Options
	workers int

	mu      sync.Mutex
	pending map[string][]byte
}

func NewWriter(outDir string, opts Options, workers int) *Writer {
	if workers <= 0 {
		workers = 4
	}
	return &Writer{
		outDir:  outDir,
		opts:    opts,
		workers: workers,
		pending: map[string][]byte{},
	}
}

// Emit queues the rendered artifact for the factory. The previous queued
// content for the same fragment, if any, is replaced.
func (w *Writer) Emit(f *Factory) error {
	content := Render(f, w.opts)
	w.mu.Lock()
	w.pending[Filename(f.Name)] = content
	w.mu.Unlock()
	return nil
}

// Exists reports whether an artifact for the fragment is queued in this run
// or already on disk from a previous one.
func (w *Writer) Exists(name string) bool {
	filename := Filename(name)
	w.mu.Lock()
	_, queued := w.pending[filename]
	w.mu.Unlock()
	if queued {
		return true
	}
	_, err := os.Stat(filepath.Join(w.outDir, filename))
	return err == nil
}

// Flush writes every queued artifact and returns the written file names in
// sorted order. Files are overwritten wholesale.
func (w *Writer) Flush(ctx context.Context) ([]string, error) {
	w.mu.Lock()
	pending := w.pending
	w.pending = map[string][]byte{}
	w.mu.Unlock()
	if len(pending) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return nil, err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	names := sortedKeys(pending)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(w.outDir, name), pending[name], 0644)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
