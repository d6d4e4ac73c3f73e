package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const exportMarker = "export const sampleIds"

const defaultHeader = `// Sample identifier registry. Existing entries are never rewritten; new
// types are appended. Edit by hand only when every dependent mock will be
// regenerated.

export const sampleIds = {`

const defaultFooter = "};\n"

// TSStore persists the registry as a TypeScript module exporting one
// mapping literal:
//
//	export const sampleIds = {
//	  User: ["1", "2", "3"],
//	  LineItem: [1, 2, 3],
//	};
//
// Text before the opening brace and after the closing brace is preserved
// verbatim, as are the lines of pre-existing entries. Entries are
// line-oriented: one `Name: [tokens],` per line.
type TSStore struct {
	path   string
	header string
	footer string
}

func NewTSStore(path string) *TSStore {
	return &TSStore{path: path, header: defaultHeader, footer: defaultFooter}
}

// Load parses the store file. A missing file is an empty registry.
func (s *TSStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Path: s.path, Reason: "read failed", Err: err}
	}
	content := string(data)

	marker := strings.Index(content, exportMarker)
	if marker < 0 {
		return nil, &StoreError{Path: s.path, Reason: "missing `" + exportMarker + "`"}
	}
	open := strings.Index(content[marker:], "{")
	if open < 0 {
		return nil, &StoreError{Path: s.path, Reason: "mapping literal has no opening brace"}
	}
	open += marker
	closing := strings.Index(content[open:], "}")
	if closing < 0 {
		return nil, &StoreError{Path: s.path, Reason: "mapping literal has no closing brace"}
	}
	closing += open

	s.header = content[:open+1]
	s.footer = content[closing:]

	var entries []Entry
	for _, line := range strings.Split(content[open+1:closing], "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseEntryLine(line)
		if err != nil {
			return nil, &StoreError{Path: s.path, Reason: err.Error()}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseEntryLine reads one `Name: [token, token, token],` line. The raw line
// is kept so Persist reproduces it byte for byte.
func parseEntryLine(line string) (Entry, error) {
	trimmed := strings.TrimSpace(line)
	name, rest, ok := strings.Cut(trimmed, ":")
	if !ok {
		return Entry{}, fmt.Errorf("entry %q has no key", trimmed)
	}
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	if name == "" {
		return Entry{}, fmt.Errorf("entry %q has an empty key", trimmed)
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ",")
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return Entry{}, fmt.Errorf("entry %q is not a bracketed sequence", name)
	}
	var tokens []string
	for _, tok := range strings.Split(rest[1:len(rest)-1], ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return Entry{}, fmt.Errorf("entry %q has no tokens", name)
	}
	return Entry{Type: name, Tokens: tokens, raw: line}, nil
}

// Persist writes header, entries, and footer. Loaded entries keep their
// original lines; new ones are rendered with a two-space indent. A missing
// separator comma on a kept line is restored so the module stays parseable.
func (s *TSStore) Persist(entries []Entry) error {
	var b strings.Builder
	b.WriteString(s.header)
	b.WriteString("\n")
	for i, e := range entries {
		line := e.raw
		if line == "" {
			line = "  " + e.Type + ": [" + strings.Join(e.Tokens, ", ") + "],"
		} else if i < len(entries)-1 && !strings.HasSuffix(strings.TrimRight(line, " \t"), ",") {
			line += ","
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(s.footer)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &StoreError{Path: s.path, Reason: "create directory", Err: err}
		}
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return &StoreError{Path: s.path, Reason: "write failed", Err: err}
	}
	return nil
}

var _ Store = (*TSStore)(nil)
