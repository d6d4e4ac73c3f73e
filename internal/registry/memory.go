package registry

// MemoryStore keeps entries in memory, for tests.
type MemoryStore struct {
	Entries  []Entry
	Persists int
}

func (s *MemoryStore) Load() ([]Entry, error) {
	return append([]Entry(nil), s.Entries...), nil
}

func (s *MemoryStore) Persist(entries []Entry) error {
	s.Entries = append([]Entry(nil), entries...)
	s.Persists++
	return nil
}

var _ Store = (*MemoryStore)(nil)
