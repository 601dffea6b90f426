package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.UseSupabase())
	assert.True(t, cfg.Features.EnableMetrics)
	assert.False(t, cfg.Features.EnableCircuitBreaker)
}

func TestLoad_SupabaseURLRequiresServiceKey(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("CONFIG_FILE", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_EnvOverridesAndOrigins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FileOverlayWinsOverEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7070\nfeatures:\n  enableCircuitBreaker: true\n"), 0o644))
	t.Setenv("PORT", "9090")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.True(t, cfg.Features.EnableCircuitBreaker)
}

func TestLoad_InvalidPortRejected(t *testing.T) {
	t.Setenv("PORT", "-1")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("CONFIG_FILE", "")

	_, err := Load()

	assert.Error(t, err)
}
