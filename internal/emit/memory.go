package emit

import (
	"context"
	"sync"
)

// MemoryWriter collects rendered artifacts in memory, for tests.
type MemoryWriter struct {
	opts Options

	mu        sync.Mutex
	artifacts map[string][]byte
	order     []string
	preloaded map[string]bool
	flushes   int
}

func NewMemoryWriter(opts Options) *MemoryWriter {
	return &MemoryWriter{
		opts:      opts,
		artifacts: map[string][]byte{},
		preloaded: map[string]bool{},
	}
}

// Preload marks fragments as already generated by a previous run.
func (w *MemoryWriter) Preload(names ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, name := range names {
		w.preloaded[name] = true
	}
}

func (w *MemoryWriter) Emit(f *Factory) error {
	content := Render(f, w.opts)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, seen := w.artifacts[f.Name]; !seen {
		w.order = append(w.order, f.Name)
	}
	w.artifacts[f.Name] = content
	return nil
}

func (w *MemoryWriter) Exists(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.artifacts[name]; ok {
		return true
	}
	return w.preloaded[name]
}

func (w *MemoryWriter) Flush(ctx context.Context) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushes++
	names := make([]string, 0, len(w.artifacts))
	for _, name := range w.order {
		names = append(names, Filename(name))
	}
	return names, nil
}

// Artifact returns the rendered content for a fragment, or nil.
func (w *MemoryWriter) Artifact(name string) []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.artifacts[name]
}

// Order returns fragment names in first-emission order.
func (w *MemoryWriter) Order() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.order...)
}

// Flushes returns how many times Flush ran.
func (w *MemoryWriter) Flushes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushes
}
