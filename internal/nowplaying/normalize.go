package nowplaying

import (
	"strings"
	"time"

	"music-display-server/internal/models"
)

// OfflineTitle is what the widget shows when nothing is playing.
const OfflineTitle = "Currently offline"

// Offline returns the canonical offline record. Every path that decides
// playback has stopped commits this exact record, nothing else.
func Offline(now time.Time) models.PlayingRecord {
	return models.PlayingRecord{
		Title:     OfflineTitle,
		PlayState: models.StateOffline,
		Timestamp: now.UnixMilli(),
	}
}

// Normalizer applies the display rules to an incoming record before it is
// committed. It is pure: no I/O, no state beyond the two suppression sets
// loaded from config at startup.
type Normalizer struct {
	hideArtArtists map[string]bool
	hideArtAlbums  map[string]bool
	now            func() time.Time
}

func NewNormalizer(hideArtArtists, hideArtAlbums []string) *Normalizer {
	n := &Normalizer{
		hideArtArtists: make(map[string]bool, len(hideArtArtists)),
		hideArtAlbums:  make(map[string]bool, len(hideArtAlbums)),
		now:            time.Now,
	}
	for _, artist := range hideArtArtists {
		n.hideArtArtists[strings.ToLower(artist)] = true
	}
	for _, album := range hideArtAlbums {
		n.hideArtAlbums[strings.ToLower(album)] = true
	}
	return n
}

// Normalize applies the rules in order:
//
//  1. An offline record collapses to the canonical offline record,
//     whatever else the payload carried.
//  2. Artwork for a suppressed artist is cleared.
//  3. An album named "{title} - Single" (the usual single-release
//     convention) is cleared to the empty string.
//  4. Artwork for a suppressed album (checked after the single-release
//     clearing) is cleared.
//  5. The timestamp is replaced with server time.
//
// Suppression matching is case-insensitive. Absent artwork stays absent;
// the widget supplies its own placeholder.
func (n *Normalizer) Normalize(raw models.PlayingRecord) models.PlayingRecord {
	now := n.now()

	if raw.PlayState == models.StateOffline {
		return Offline(now)
	}

	rec := raw

	if n.hideArtArtists[strings.ToLower(rec.Artist)] {
		rec.AlbumArt = ""
	}

	if rec.Album == rec.Title+" - Single" {
		rec.Album = ""
	}

	if n.hideArtAlbums[strings.ToLower(rec.Album)] {
		rec.AlbumArt = ""
	}

	rec.Timestamp = now.UnixMilli()
	return rec
}
