package models

// PlayingRecord is the single now-playing state pushed by the publisher and
// fanned out to every connected widget. The JSON field names are the wire
// format the widget and existing publishers depend on; do not rename them.
type PlayingRecord struct {
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Album      string    `json:"album"`
	DurationMs int64     `json:"durationMs"`
	PositionMs int64     `json:"positionMs"`
	PlayState  PlayState `json:"playState"`

	// Timestamp is the capture time of PositionMs in epoch milliseconds.
	// Always assigned by the server at commit, never trusted from the writer.
	Timestamp int64 `json:"timestamp"`

	// AlbumArt is a base64 encoded image. Empty means "no artwork"; the
	// widget falls back to a placeholder.
	AlbumArt string `json:"albumArt,omitempty"`
}
