package discovery

import (
	"context"
	"fmt"
	"sort"
)

// MemorySource is a test implementation of Source that stores documents in
// memory, keyed by document name.
type MemorySource struct {
	contents map[string]string
}

func NewMemorySource(documents map[string]string) *MemorySource {
	contents := make(map[string]string, len(documents))
	for name, content := range documents {
		contents[name] = content
	}
	return &MemorySource{contents: contents}
}

func (s *MemorySource) List(ctx context.Context) ([]Info, error) {
	infos := make([]Info, 0, len(s.contents))
	for name := range s.contents {
		infos = append(infos, Info{Name: name, Path: name})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *MemorySource) Read(ctx context.Context, name string) (string, error) {
	content, ok := s.contents[name]
	if !ok {
		return "", fmt.Errorf("fragment %q: %w", name, ErrNotFound)
	}
	return content, nil
}

var _ Source = (*MemorySource)(nil)
