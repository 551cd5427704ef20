package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"music-display-server/internal/api"
	"music-display-server/internal/api/middleware"
	"music-display-server/internal/config"
	"music-display-server/internal/nowplaying"
)

func main() {
	// Flags override config.yaml / environment values
	addr := flag.String("addr", "", "Override listen address")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	nowplaying.RegisterMetrics()
	middleware.RegisterMetrics()

	// The store starts offline; the first publisher update brings it live.
	normalizer := nowplaying.NewNormalizer(cfg.Display.HideArtArtists, cfg.Display.HideArtAlbums)
	store := nowplaying.NewStore(nowplaying.Offline(time.Now()))
	hub := nowplaying.NewHub(store)
	service := nowplaying.NewService(normalizer, store, hub)

	watchdog := nowplaying.NewWatchdog(service,
		time.Duration(cfg.Watchdog.PollIntervalSeconds)*time.Second,
		time.Duration(cfg.Watchdog.GracePeriodSeconds)*time.Second,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go watchdog.Run(ctx)

	server := api.New(cfg, service)
	httpServer := &http.Server{Addr: cfg.Server.Addr, Handler: server.Router()}

	go func() {
		log.Printf("🎧 Now-playing server listening at %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Shutdown(shutdownCtx)
}
