package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 10, cfg.Engine.MaxResults)
	assert.Equal(t, 0.2, cfg.Engine.MinScore)
	assert.Equal(t, 0.3, cfg.Engine.DistancePenaltyWeight)
	assert.Equal(t, 5000.0, cfg.Engine.DefaultRadiusMeters)
	assert.Equal(t, 10*time.Second, cfg.Places.Timeout)
	assert.Equal(t, "development", cfg.Security.Mode)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
engine:
  max_results: 5
  min_score: 0.4
places:
  api_key: file-key
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.MaxResults)
	assert.Equal(t, 0.4, cfg.Engine.MinScore)
	assert.Equal(t, "file-key", cfg.Places.APIKey)
	// Untouched sections keep defaults.
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 0.3, cfg.Engine.DistancePenaltyWeight)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))

	t.Setenv("VIBEPLACE_PORT", "7070")
	t.Setenv("VIBEPLACE_PLACES_API_KEY", "env-key")
	t.Setenv("VIBEPLACE_MIN_SCORE", "0.5")
	t.Setenv("VIBEPLACE_PLACES_TIMEOUT", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-key", cfg.Places.APIKey)
	assert.Equal(t, 0.5, cfg.Engine.MinScore)
	assert.Equal(t, 30*time.Second, cfg.Places.Timeout)
}

func TestLoadUnparseableEnvFallsBack(t *testing.T) {
	t.Setenv("VIBEPLACE_PORT", "not-a-number")
	t.Setenv("VIBEPLACE_MIN_SCORE", "nope")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.2, cfg.Engine.MinScore)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("VIBEPLACE_PORT", "-1")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid server port")
	})

	t.Run("production requires token", func(t *testing.T) {
		t.Setenv("VIBEPLACE_SECURITY_MODE", "production")
		_, err := Load("")
		assert.ErrorContains(t, err, "requires VIBEPLACE_API_TOKEN")
	})

	t.Run("production with token", func(t *testing.T) {
		t.Setenv("VIBEPLACE_SECURITY_MODE", "production")
		t.Setenv("VIBEPLACE_API_TOKEN", "secret")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.Security.APIToken)
	})

	t.Run("min_score out of range", func(t *testing.T) {
		t.Setenv("VIBEPLACE_MIN_SCORE", "1.5")
		_, err := Load("")
		assert.ErrorContains(t, err, "min_score")
	})
}
