package leave

import "sync"

// Store holds the last fetched dataset. Every successful (or failed) fetch
// replaces the contents wholesale; there is no merge or diff logic, the
// last fetch simply wins. The lock stands in for the original runtime's
// single-threaded guarantee, since the HTTP server serves concurrently.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func NewStore() *Store {
	return &Store{records: []Record{}}
}

// Replace swaps the cached dataset for the given one.
func (s *Store) Replace(records []Record) {
	if records == nil {
		records = []Record{}
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Snapshot returns a copy of the cached record slice. The copy keeps
// renderers from mutating the cache in place.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of cached records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
