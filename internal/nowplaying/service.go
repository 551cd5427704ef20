package nowplaying

import (
	"sync"

	"music-display-server/internal/models"
)

// Service is the single write path: normalize, commit, publish, all under
// one mutex so no two writes interleave. Ingress and the watchdog both go
// through here and nothing else touches the Store or Hub directly.
type Service struct {
	mu         sync.Mutex
	normalizer *Normalizer
	store      *Store
	hub        *Hub
}

func NewService(normalizer *Normalizer, store *Store, hub *Hub) *Service {
	return &Service{
		normalizer: normalizer,
		store:      store,
		hub:        hub,
	}
}

// Update runs a raw publisher record through the full commit path and
// returns the record as committed.
func (s *Service) Update(raw models.PlayingRecord) models.PlayingRecord {
	return s.commit(raw, "publisher")
}

// GoOffline commits the canonical offline record on behalf of the
// staleness watchdog.
func (s *Service) GoOffline() models.PlayingRecord {
	return s.commit(models.PlayingRecord{PlayState: models.StateOffline}, "watchdog")
}

func (s *Service) commit(raw models.PlayingRecord, source string) models.PlayingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.normalizer.Normalize(raw)
	s.store.Commit(rec)
	s.hub.Publish(rec)
	commitsTotal.WithLabelValues(source).Inc()
	return rec
}

// Snapshot returns the current record with no side effects.
func (s *Service) Snapshot() models.PlayingRecord {
	return s.store.Snapshot()
}

// Subscribe registers a push subscriber. Registration takes the commit-path
// mutex, so a subscriber can never slip in between a commit and its publish
// and receive that record twice (once as its snapshot, once fanned out).
func (s *Service) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hub.Subscribe()
}

// Unsubscribe removes a subscriber. Removal is safe concurrent with an
// in-flight publish, so it does not need the commit-path mutex.
func (s *Service) Unsubscribe(sub *Subscription) {
	s.hub.Unsubscribe(sub)
}
