package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/dhowden/tag"

	"music-display-server/internal/models"
)

// buildRecord reads the file's tags and embedded artwork into a publisher
// update. Most tag formats don't carry a playable duration, so that is left
// for the -duration flag.
func buildRecord(path string) (models.PlayingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.PlayingRecord{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return models.PlayingRecord{}, fmt.Errorf("read tags from %s: %w", path, err)
	}

	rec := models.PlayingRecord{
		Title:     m.Title(),
		Artist:    m.Artist(),
		Album:     m.Album(),
		PlayState: models.StatePlaying,
	}
	if pic := m.Picture(); pic != nil {
		rec.AlbumArt = base64.StdEncoding.EncodeToString(pic.Data)
	}
	return rec, nil
}

func publish(serverURL, token string, rec models.PlayingRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, serverURL+"/now-playing", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server answered %s", resp.Status)
	}
	return nil
}
