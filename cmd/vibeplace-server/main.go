package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibeplace/vibeplace/internal/config"
	"github.com/vibeplace/vibeplace/internal/music"
	"github.com/vibeplace/vibeplace/internal/places"
	"github.com/vibeplace/vibeplace/internal/server"
	"github.com/vibeplace/vibeplace/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Places.APIKey == "" {
		log.Println("Warning: no places API key configured, upstream calls will fail")
	}

	placesClient := places.NewClient(places.Config{
		APIKey:            cfg.Places.APIKey,
		BaseURL:           cfg.Places.BaseURL,
		Timeout:           cfg.Places.Timeout,
		RequestsPerSecond: cfg.Places.RequestsPerSecond,
		Burst:             cfg.Places.Burst,
	})

	var spotify *music.SpotifyClient
	if cfg.Spotify.AccessToken != "" {
		spotify = music.NewSpotifyClient(music.SpotifyConfig{
			AccessToken: cfg.Spotify.AccessToken,
			BaseURL:     cfg.Spotify.BaseURL,
			Timeout:     cfg.Spotify.Timeout,
		})
	}

	dataset := music.NewTrackDataset(cfg.Dataset.TracksPath)

	store, err := sqlite.NewProfileStore(cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize profile storage: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, _ := server.Start(ctx, cfg, server.Deps{
		Places:       placesClient,
		ProfileStore: store,
		Spotify:      spotify,
		Dataset:      dataset,
	})
	log.Printf("VibePlace API running at http://%s", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
	time.Sleep(1 * time.Second) // Give time for connections to close
}
