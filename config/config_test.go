package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 4, cfg.RecommendationLimit)
	assert.Equal(t, 30*time.Minute, cfg.StoreIdleTTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
backend_url: http://backend:8080
jwt_secret: from-file
recommendation_limit: 6
recommendation_ttl: 5m
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "http://backend:8080", cfg.BackendURL)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 6, cfg.RecommendationLimit)
	assert.Equal(t, 5*time.Minute, cfg.RecommendationTTL)
}

func TestLoad_RequiresSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "abc")
	t.Setenv("STORE_IDLE_TTL", "30")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `PORT: invalid integer "abc"`)
	assert.Contains(t, err.Error(), `STORE_IDLE_TTL: invalid duration "30"`)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
