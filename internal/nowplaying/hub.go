package nowplaying

import (
	"sync"

	"music-display-server/internal/models"
)

// subscriberBuffer is how many undelivered records a subscriber may lag
// behind before it is evicted.
const subscriberBuffer = 8

// Subscription is one live fan-out registration. Records arrive on C in
// commit order, starting with the snapshot current at subscribe time. C is
// closed on Unsubscribe or eviction.
type Subscription struct {
	id uint64
	C  chan models.PlayingRecord
}

// Hub fans every committed record out to all registered subscribers.
type Hub struct {
	store *Store

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscription
}

func NewHub(store *Store) *Hub {
	return &Hub{
		store: store,
		subs:  make(map[uint64]*Subscription),
	}
}

// Subscribe registers a new subscriber. The current snapshot is already in
// the channel buffer when Subscribe returns, so a late subscriber always
// receives the record committed before it joined ahead of anything newer.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id: h.nextID,
		C:  make(chan models.PlayingRecord, subscriberBuffer),
	}
	sub.C <- h.store.Snapshot()
	h.subs[sub.id] = sub
	subscriberGauge.Inc()
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call
// more than once and safe to call while a Publish is in flight.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub.id)
}

func (h *Hub) removeLocked(id uint64) {
	sub, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(sub.C)
	subscriberGauge.Dec()
}

// Publish delivers rec to every subscriber without blocking. A subscriber
// whose buffer is already full is evicted rather than skipped, so the
// records a subscriber does receive are always the uninterrupted commit
// sequence from its subscription point. An evicted client reconnects and
// catches up via the subscribe-time snapshot.
func (h *Hub) Publish(rec models.PlayingRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		select {
		case sub.C <- rec:
		default:
			h.removeLocked(id)
		}
	}
}

// Subscribers reports the current fan-out set size.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
