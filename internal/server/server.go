// Package server provides HTTP server initialization and lifecycle
// management for the VibePlace API.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/vibeplace/vibeplace/internal/config"
	"github.com/vibeplace/vibeplace/internal/engine"
	"github.com/vibeplace/vibeplace/internal/music"
	"github.com/vibeplace/vibeplace/internal/places"
	"github.com/vibeplace/vibeplace/internal/storage"
	"github.com/vibeplace/vibeplace/web/handlers"
)

// Deps are the wired dependencies the server routes traffic to. Places is
// required; the rest may be nil, disabling the endpoints that need them.
type Deps struct {
	Places       *places.Client
	ProfileStore storage.ProfileStore
	Spotify      *music.SpotifyClient
	Dataset      *music.TrackDataset
}

// securityHeadersMiddleware adds security headers to all HTTP responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server. Returns the actual address
// being listened on (useful for testing with port 0) and the WebSocketHub
// carrying scoring progress broadcasts. The server shuts down gracefully
// when ctx is cancelled.
func Start(ctx context.Context, cfg *config.Config, deps Deps) (string, *handlers.WebSocketHub) {
	mux := http.NewServeMux()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	wsHub := handlers.NewWebSocketHub([]string{addr, fmt.Sprintf("localhost:%d", cfg.Server.Port)})
	go wsHub.Run()

	rateLimiter := handlers.NewRateLimiter(cfg.Security.RequestsPerSecond, cfg.Security.Burst)

	engineCfg := engine.Config{
		MaxResults:            cfg.Engine.MaxResults,
		MinScore:              cfg.Engine.MinScore,
		DistancePenaltyWeight: cfg.Engine.DistancePenaltyWeight,
		NoiseAmplitude:        cfg.Engine.NoiseAmplitude,
		DefaultRadiusMeters:   cfg.Engine.DefaultRadiusMeters,
		MMRLambda:             cfg.Engine.MMRLambda,
	}

	recommendHandlers := handlers.NewRecommendHandlers(deps.Places, deps.Places, engineCfg, wsHub)
	placesHandlers := handlers.NewPlacesHandlers(deps.Places, cfg.Engine.DefaultRadiusMeters)
	reviewsHandlers := handlers.NewReviewsHandlers(deps.Places)

	// API routes (require auth in production mode)
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("/api/recommendations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		recommendHandlers.Recommend(w, r)
	})
	apiMux.HandleFunc("/api/places/nearby", placesHandlers.Nearby)
	apiMux.HandleFunc("/api/places/autocomplete", placesHandlers.Autocomplete)
	apiMux.HandleFunc("/api/reviews", reviewsHandlers.Get)

	if deps.Dataset != nil {
		var musicHandlers *handlers.MusicHandlers
		if deps.Spotify != nil {
			musicHandlers = handlers.NewMusicHandlers(deps.Spotify, deps.Dataset)
		} else {
			musicHandlers = handlers.NewMusicHandlers(nil, deps.Dataset)
		}
		apiMux.HandleFunc("/api/music/profile", musicHandlers.Profile)
	}

	if deps.ProfileStore != nil {
		profileHandlers := handlers.NewProfileHandlers(deps.ProfileStore)
		apiMux.HandleFunc("/api/profiles", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				profileHandlers.List(w, r)
			case http.MethodPost:
				profileHandlers.Create(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})
		apiMux.HandleFunc("/api/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				profileHandlers.Get(w, r)
			case http.MethodPut:
				profileHandlers.Update(w, r)
			case http.MethodDelete:
				profileHandlers.Delete(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})
	}

	// Health endpoint — no auth required, used by monitoring
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","version":"1.0.0"}`))
	})

	// Wrap API routes with auth middleware
	mux.Handle("/api/", handlers.RequireAuth(apiMux, cfg))

	// WebSocket endpoint (no auth required - origin validation handles security)
	mux.Handle("/ws", wsHub)

	// Wrap the entire server with rate limiting, then security headers
	handler := handlers.RateLimitMiddleware(mux, rateLimiter)
	handler = securityHeadersMiddleware(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	actualAddr := listener.Addr().String()

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		wsHub.Stop()
	}()

	return actualAddr, wsHub
}
