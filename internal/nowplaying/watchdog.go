package nowplaying

import (
	"context"
	"log/slog"
	"time"

	"music-display-server/internal/models"
)

// Watchdog demotes the current record to offline when the publisher stops
// sending updates, e.g. the player was closed without a final update. A
// record older than its own track length plus the grace period is presumed
// stale no matter what its transport state claims.
//
// A zero-duration record goes stale after the grace period alone, so
// publishers of legitimately endless tracks (live streams) should send a
// large fallback duration.
type Watchdog struct {
	service  *Service
	interval time.Duration
	grace    time.Duration
	now      func() time.Time
}

func NewWatchdog(service *Service, interval, grace time.Duration) *Watchdog {
	return &Watchdog{
		service:  service,
		interval: interval,
		grace:    grace,
		now:      time.Now,
	}
}

// Run sweeps every interval until ctx is cancelled.
func (w *Watchdog) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep performs one staleness check, committing the offline record
// through the same path ingress uses if the current record has outlived
// its track.
func (w *Watchdog) Sweep() {
	cur := w.service.Snapshot()
	if cur.PlayState == models.StateOffline {
		return
	}

	elapsed := w.now().UnixMilli() - cur.Timestamp
	if elapsed <= cur.DurationMs+w.grace.Milliseconds() {
		return
	}

	slog.Info("no update since track should have ended, going offline",
		"title", cur.Title, "elapsed_ms", elapsed, "duration_ms", cur.DurationMs)
	w.service.GoOffline()
	offlineTransitions.Inc()
}
