package nowplaying

import (
	"testing"
	"time"

	"music-display-server/internal/models"
)

var fixedNow = time.UnixMilli(1700000000000)

func newTestNormalizer(hideArtists, hideAlbums []string) *Normalizer {
	n := NewNormalizer(hideArtists, hideAlbums)
	n.now = func() time.Time { return fixedNow }
	return n
}

func TestOfflineCollapseIsCanonical(t *testing.T) {
	n := newTestNormalizer(nil, nil)
	want := Offline(fixedNow)

	// Whatever garbage rides along with an offline state, the committed
	// record is field-for-field the canonical one.
	inputs := []models.PlayingRecord{
		{PlayState: models.StateOffline},
		{PlayState: models.StateOffline, Title: "ghost", Artist: "ghost", Album: "ghost",
			DurationMs: 999999, PositionMs: 123, AlbumArt: "Z2FyYmFnZQ==", Timestamp: 42},
	}

	for _, in := range inputs {
		got := n.Normalize(in)
		if got != want {
			t.Errorf("Normalize(%+v) = %+v, want canonical offline %+v", in, got, want)
		}
	}
}

func TestOfflineSentinelShape(t *testing.T) {
	got := Offline(fixedNow)
	if got.Title != OfflineTitle || got.Artist != "" || got.Album != "" {
		t.Errorf("unexpected sentinel metadata: %+v", got)
	}
	if got.DurationMs != 0 || got.PositionMs != 0 || got.AlbumArt != "" {
		t.Errorf("sentinel should be empty apart from title: %+v", got)
	}
	if got.PlayState != models.StateOffline {
		t.Errorf("sentinel state = %v", got.PlayState)
	}
	if got.Timestamp != fixedNow.UnixMilli() {
		t.Errorf("sentinel timestamp = %d, want %d", got.Timestamp, fixedNow.UnixMilli())
	}
}

func TestArtistSuppressionClearsArtwork(t *testing.T) {
	n := newTestNormalizer([]string{"Hidden Artist"}, nil)

	got := n.Normalize(models.PlayingRecord{
		Artist:    "hidden artist", // matching is case-insensitive
		Title:     "T",
		AlbumArt:  "YXJ0",
		PlayState: models.StatePlaying,
	})
	if got.AlbumArt != "" {
		t.Errorf("artwork for a suppressed artist survived: %q", got.AlbumArt)
	}

	got = n.Normalize(models.PlayingRecord{Artist: "Someone Else", AlbumArt: "YXJ0"})
	if got.AlbumArt != "YXJ0" {
		t.Errorf("artwork for a non-suppressed artist was cleared")
	}
}

func TestSingleReleaseAlbumCleared(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	got := n.Normalize(models.PlayingRecord{Title: "X", Album: "X - Single"})
	if got.Album != "" {
		t.Errorf("Album = %q, want empty", got.Album)
	}

	// Only the exact "{title} - Single" form is cleared.
	got = n.Normalize(models.PlayingRecord{Title: "X", Album: "Y - Single"})
	if got.Album != "Y - Single" {
		t.Errorf("unrelated album was cleared: %q", got.Album)
	}
}

func TestAlbumSuppressionRunsAfterSingleClearing(t *testing.T) {
	n := newTestNormalizer(nil, []string{"Secret Album"})

	got := n.Normalize(models.PlayingRecord{Album: "Secret Album", AlbumArt: "YXJ0"})
	if got.AlbumArt != "" {
		t.Errorf("artwork for a suppressed album survived")
	}

	// "Secret Album - Single" clears to "" first, so the suppression set no
	// longer matches and the artwork stays.
	got = n.Normalize(models.PlayingRecord{Title: "Secret Album", Album: "Secret Album - Single", AlbumArt: "YXJ0"})
	if got.AlbumArt != "YXJ0" {
		t.Errorf("suppression matched the pre-clearing album name")
	}
}

func TestTimestampIsServerAssigned(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	got := n.Normalize(models.PlayingRecord{Title: "T", Timestamp: 12345})
	if got.Timestamp != fixedNow.UnixMilli() {
		t.Errorf("Timestamp = %d, want server time %d", got.Timestamp, fixedNow.UnixMilli())
	}
}
