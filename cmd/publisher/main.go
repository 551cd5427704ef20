package main

import (
	"flag"
	"log"
	"os"
	"time"

	"music-display-server/internal/models"
)

// A small publisher for testing the write path end to end: reads the tags
// of a local audio file and pushes them as the now-playing record.
func main() {
	server := flag.String("server", "http://localhost:3000", "Display server base URL")
	token := flag.String("token", os.Getenv("NOWPLAYING_SERVER_TOKEN"), "Shared publisher token")
	file := flag.String("file", "", "Audio file to read tags from")
	state := flag.String("state", "playing", "Transport state (playing, paused)")
	duration := flag.Int64("duration", 0, "Track length in ms (overrides any tagged value)")
	position := flag.Int64("position", 0, "Playback position in ms")
	offline := flag.Bool("offline", false, "Push the offline state and exit")
	watch := flag.Duration("watch", 0, "Re-publish at this interval, advancing the position")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if *token == "" {
		log.Fatal("Critical: token is missing (-token or NOWPLAYING_SERVER_TOKEN)")
	}

	if *offline {
		rec := models.PlayingRecord{PlayState: models.StateOffline}
		if err := publish(*server, *token, rec); err != nil {
			log.Fatalf("❌ Publish failed: %v", err)
		}
		log.Println("✅ Pushed offline state")
		return
	}

	if *file == "" {
		log.Fatal("Critical: no audio file given (-file)")
	}

	rec, err := buildRecord(*file)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	rec.DurationMs = *duration
	rec.PositionMs = *position
	if *state == "paused" {
		rec.PlayState = models.StatePaused
	}

	if err := publish(*server, *token, rec); err != nil {
		log.Fatalf("❌ Publish failed: %v", err)
	}
	log.Printf("▶️  Published: %s - %s", rec.Artist, rec.Title)

	if *watch <= 0 {
		return
	}

	// Watch mode: keep the record fresh so the server's staleness sweep
	// never demotes it while we are still "playing".
	start := time.Now()
	ticker := time.NewTicker(*watch)
	defer ticker.Stop()

	for range ticker.C {
		next := rec
		if next.PlayState == models.StatePlaying {
			next.PositionMs = *position + time.Since(start).Milliseconds()
		}
		if err := publish(*server, *token, next); err != nil {
			log.Printf("⚠️ Publish failed: %v", err)
			continue
		}
		log.Printf("🔄 Refreshed at position %dms", next.PositionMs)
	}
}
