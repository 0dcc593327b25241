// Package config provides configuration management for VibePlace.
// Settings come from an optional YAML file plus environment variables with
// the VIBEPLACE_ prefix; environment variables override file values, and
// sensible defaults cover everything else.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings for the VibePlace application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Places   PlacesConfig   `yaml:"places"`
	Spotify  SpotifyConfig  `yaml:"spotify"`
	Engine   EngineConfig   `yaml:"engine"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Storage  StorageConfig  `yaml:"storage"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"` // Server port (default: 8080)
	Host string `yaml:"host"` // Server host (default: 127.0.0.1)
}

// PlacesConfig contains the places API client configuration.
type PlacesConfig struct {
	APIKey            string        `yaml:"api_key"`
	BaseURL           string        `yaml:"base_url"` // Empty uses the Google Places endpoint.
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// SpotifyConfig contains the Spotify client configuration.
type SpotifyConfig struct {
	AccessToken string        `yaml:"access_token"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

// EngineConfig contains recommendation engine tuning knobs.
type EngineConfig struct {
	MaxResults            int     `yaml:"max_results"`             // default: 10
	MinScore              float64 `yaml:"min_score"`               // default: 0.2
	DistancePenaltyWeight float64 `yaml:"distance_penalty_weight"` // default: 0.3
	NoiseAmplitude        float64 `yaml:"noise_amplitude"`         // default: 0.05
	DefaultRadiusMeters   float64 `yaml:"default_radius_meters"`   // default: 5000
	MMRLambda             float64 `yaml:"mmr_lambda"`              // default: 0.7
}

// DatasetConfig points at the bundled track dataset used when no Spotify
// token is available.
type DatasetConfig struct {
	TracksPath string `yaml:"tracks_path"` // default: ./data/tracks.csv
}

// StorageConfig contains taste-profile persistence configuration.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite DSN (default: ./data/vibeplace.db)
}

// SecurityConfig contains authentication and rate-limit settings.
type SecurityConfig struct {
	Mode              string  `yaml:"mode"`      // development or production (default: development)
	APIToken          string  `yaml:"api_token"` // Required in production mode.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Load builds a Config from defaults, an optional YAML file at path, and
// environment variables, in that precedence order (env wins). An empty path
// skips the file layer; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "127.0.0.1",
		},
		Places: PlacesConfig{
			Timeout:           10 * time.Second,
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Spotify: SpotifyConfig{
			Timeout: 10 * time.Second,
		},
		Engine: EngineConfig{
			MaxResults:            10,
			MinScore:              0.2,
			DistancePenaltyWeight: 0.3,
			NoiseAmplitude:        0.05,
			DefaultRadiusMeters:   5000,
			MMRLambda:             0.7,
		},
		Dataset: DatasetConfig{
			TracksPath: "./data/tracks.csv",
		},
		Storage: StorageConfig{
			DSN: "./data/vibeplace.db",
		},
		Security: SecurityConfig{
			Mode:              "development",
			RequestsPerSecond: 20,
			Burst:             40,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvInt("VIBEPLACE_PORT", cfg.Server.Port)
	cfg.Server.Host = getEnv("VIBEPLACE_HOST", cfg.Server.Host)

	cfg.Places.APIKey = getEnv("VIBEPLACE_PLACES_API_KEY", cfg.Places.APIKey)
	cfg.Places.BaseURL = getEnv("VIBEPLACE_PLACES_BASE_URL", cfg.Places.BaseURL)
	cfg.Places.Timeout = getEnvDuration("VIBEPLACE_PLACES_TIMEOUT", cfg.Places.Timeout)
	cfg.Places.RequestsPerSecond = getEnvFloat("VIBEPLACE_PLACES_RPS", cfg.Places.RequestsPerSecond)
	cfg.Places.Burst = getEnvInt("VIBEPLACE_PLACES_BURST", cfg.Places.Burst)

	cfg.Spotify.AccessToken = getEnv("VIBEPLACE_SPOTIFY_TOKEN", cfg.Spotify.AccessToken)
	cfg.Spotify.BaseURL = getEnv("VIBEPLACE_SPOTIFY_BASE_URL", cfg.Spotify.BaseURL)
	cfg.Spotify.Timeout = getEnvDuration("VIBEPLACE_SPOTIFY_TIMEOUT", cfg.Spotify.Timeout)

	cfg.Engine.MaxResults = getEnvInt("VIBEPLACE_MAX_RESULTS", cfg.Engine.MaxResults)
	cfg.Engine.MinScore = getEnvFloat("VIBEPLACE_MIN_SCORE", cfg.Engine.MinScore)
	cfg.Engine.DistancePenaltyWeight = getEnvFloat("VIBEPLACE_DISTANCE_PENALTY_WEIGHT", cfg.Engine.DistancePenaltyWeight)
	cfg.Engine.NoiseAmplitude = getEnvFloat("VIBEPLACE_NOISE_AMPLITUDE", cfg.Engine.NoiseAmplitude)
	cfg.Engine.DefaultRadiusMeters = getEnvFloat("VIBEPLACE_DEFAULT_RADIUS_METERS", cfg.Engine.DefaultRadiusMeters)
	cfg.Engine.MMRLambda = getEnvFloat("VIBEPLACE_MMR_LAMBDA", cfg.Engine.MMRLambda)

	cfg.Dataset.TracksPath = getEnv("VIBEPLACE_TRACKS_PATH", cfg.Dataset.TracksPath)
	cfg.Storage.DSN = getEnv("VIBEPLACE_DB_DSN", cfg.Storage.DSN)

	cfg.Security.Mode = getEnv("VIBEPLACE_SECURITY_MODE", cfg.Security.Mode)
	cfg.Security.APIToken = getEnv("VIBEPLACE_API_TOKEN", cfg.Security.APIToken)
	cfg.Security.RequestsPerSecond = getEnvFloat("VIBEPLACE_RATE_LIMIT_RPS", cfg.Security.RequestsPerSecond)
	cfg.Security.Burst = getEnvInt("VIBEPLACE_RATE_LIMIT_BURST", cfg.Security.Burst)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Security.Mode == "production" && c.Security.APIToken == "" {
		return fmt.Errorf("config: production mode requires VIBEPLACE_API_TOKEN")
	}
	if c.Engine.MinScore < 0 || c.Engine.MinScore > 1 {
		return fmt.Errorf("config: min_score must be in [0, 1], got %v", c.Engine.MinScore)
	}
	if c.Engine.MaxResults <= 0 {
		return fmt.Errorf("config: max_results must be positive, got %d", c.Engine.MaxResults)
	}
	return nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value. Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default
// value. Unparseable values fall back to the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable (e.g. "10s") or
// returns a default value. Unparseable values fall back to the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
