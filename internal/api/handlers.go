package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"music-display-server/internal/models"
)

var upgrader = websocket.Upgrader{
	// Origin policy matches the allow-all CORS config.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// UpdateNowPlaying ingests a publisher update. Absent numeric fields decode
// to zero and are committed as zero; the timestamp is always replaced with
// server time. Success is an empty 200 body (publisher contract).
func (s *Server) UpdateNowPlaying(c *gin.Context) {
	var raw models.PlayingRecord
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	rec := s.service.Update(raw)
	slog.Info("now playing updated",
		"title", rec.Title, "artist", rec.Artist, "state", rec.PlayState.String())

	c.Status(http.StatusOK)
}

// GetNowPlaying returns the current snapshot. Public, no side effects.
func (s *Server) GetNowPlaying(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Snapshot())
}

// StreamNowPlaying upgrades the connection to the push channel. The client
// receives the current snapshot immediately, then every commit as a full
// record. The hub subscription lives exactly as long as the connection.
func (s *Server) StreamNowPlaying(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already answered with an error status of its own
		// (400-class) before returning; no state has changed and nothing
		// more may be written to this response.
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	sub := s.service.Subscribe()
	defer func() {
		s.service.Unsubscribe(sub)
		conn.Close()
	}()

	// The client never sends frames we care about, but a read pump is what
	// notices a dropped connection.
	go func() {
		defer s.service.Unsubscribe(sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for rec := range sub.C {
		if err := conn.WriteJSON(rec); err != nil {
			return
		}
	}
}
