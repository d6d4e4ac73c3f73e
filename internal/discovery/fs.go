package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilesystemSource implements Source over a directory tree. Every file below
// root whose name ends in the suffix is one fragment document.
type FilesystemSource struct {
	infos      []Info
	paths      map[string]string
	duplicates []Info
}

// NewFilesystemSource walks root eagerly. Listing order is the sorted
// relative path order, so runs are reproducible regardless of walk order.
// When two files derive the same document name, the first sorted path wins
// and the rest are reported by Duplicates.
func NewFilesystemSource(root, suffix string) (*FilesystemSource, error) {
	if suffix == "" {
		return nil, fmt.Errorf("fragment suffix cannot be empty")
	}
	var relPaths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}
		relPaths = append(relPaths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk fragment root %q: %w", root, err)
	}
	sort.Strings(relPaths)

	source := &FilesystemSource{paths: make(map[string]string)}
	for _, rel := range relPaths {
		name := DocumentName(strings.TrimSuffix(filepath.Base(rel), suffix))
		info := Info{Name: name, Path: rel}
		if _, seen := source.paths[name]; seen {
			source.duplicates = append(source.duplicates, info)
			continue
		}
		source.paths[name] = filepath.Join(root, rel)
		source.infos = append(source.infos, info)
	}
	return source, nil
}

func (s *FilesystemSource) List(ctx context.Context) ([]Info, error) {
	return append([]Info(nil), s.infos...), nil
}

func (s *FilesystemSource) Read(ctx context.Context, name string) (string, error) {
	path, ok := s.paths[name]
	if !ok {
		return "", fmt.Errorf("fragment %q: %w", name, ErrNotFound)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %q: %w", name, err)
	}
	return string(content), nil
}

// Duplicates returns documents shadowed by an earlier path with the same
// derived name.
func (s *FilesystemSource) Duplicates() []Info {
	return append([]Info(nil), s.duplicates...)
}

// DocumentName pascal-cases a file base into the document identity:
// "user-profile" -> "UserProfile".
func DocumentName(base string) string {
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}

var _ Source = (*FilesystemSource)(nil)
