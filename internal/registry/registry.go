// Package registry maintains the persisted mapping from schema type names to
// stable sample-identifier sequences. Sequences are created on first sight,
// reused verbatim afterwards, and written back through a Store exactly once
// at the end of a run.
package registry

import (
	"strconv"
	"sync"
)

// sampleCount is the length of every identifier sequence. Generated mocks
// reference the first element; consumers may index up to the third.
const sampleCount = 3

// Entry is one type's identifier sequence as it appears in the store. Tokens
// are rendered literal tokens of the target language, quoted for string-like
// id scalars and bare for numeric ones.
type Entry struct {
	Type   string
	Tokens []string

	// raw preserves the original store line so persisting never reformats
	// pre-existing entries.
	raw string
}

// Store loads and persists the serialized registry. Implementations keep
// their own layout state between Load and Persist so the registry stays
// independent of the serialized form.
type Store interface {
	Load() ([]Entry, error)
	Persist(entries []Entry) error
}

// Registry is the in-memory view, shared across the whole run. GetOrCreate
// is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	store   Store
	entries map[string]*Entry
	order   []string
	dirty   bool
}

func New(store Store) *Registry {
	return &Registry{
		store:   store,
		entries: map[string]*Entry{},
	}
}

// Load reads the store and indexes its entries. Duplicate type names keep
// the first occurrence.
func (r *Registry) Load() error {
	loaded, err := r.store.Load()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range loaded {
		e := loaded[i]
		if _, ok := r.entries[e.Type]; ok {
			continue
		}
		r.entries[e.Type] = &e
		r.order = append(r.order, e.Type)
	}
	return nil
}

// GetOrCreate returns the identifier sequence for the type. An existing
// entry is returned unchanged. A new entry gets the tokens 1..3, quoted
// unless the id scalar kind is numeric, and marks the registry dirty.
func (r *Registry) GetOrCreate(typeName, idKind string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[typeName]; ok {
		return e.Tokens
	}
	tokens := make([]string, sampleCount)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i + 1)
		if idKind != "Int" {
			tokens[i] = strconv.Quote(tokens[i])
		}
	}
	e := &Entry{Type: typeName, Tokens: tokens}
	r.entries[typeName] = e
	r.order = append(r.order, typeName)
	r.dirty = true
	return tokens
}

// Dirty reports whether entries were added since Load.
func (r *Registry) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Len returns the number of indexed entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Persist writes all entries back through the store in load-then-creation
// order. It is a no-op while the registry is clean, so calling it once after
// a batch persists at most once.
func (r *Registry) Persist() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return nil
	}
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, *r.entries[name])
	}
	if err := r.store.Persist(entries); err != nil {
		return err
	}
	r.dirty = false
	return nil
}
