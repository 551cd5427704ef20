package nowplaying

import (
	"sync"

	"music-display-server/internal/models"
)

// Store owns the single current record. One Store exists per process,
// constructed in main and passed by handle to everything that reads or
// writes it.
type Store struct {
	mu      sync.RWMutex
	current models.PlayingRecord
}

func NewStore(initial models.PlayingRecord) *Store {
	return &Store{current: initial}
}

// Commit replaces the current record wholesale. A concurrent Snapshot sees
// either the old record or the new one, never a mix of fields.
func (s *Store) Commit(rec models.PlayingRecord) {
	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()
}

// Snapshot returns an independent copy of the current record. The record
// holds only value types, so the copy shares nothing with the stored one.
func (s *Store) Snapshot() models.PlayingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
