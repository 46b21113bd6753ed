package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/calperez/auth-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads, so ambient CI values cannot
// leak into the defaults. t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"PORT", "ENVIRONMENT", "DEBUG", "VERSION", "DATABASE_URL",
		"ALLOWED_HOSTS", "SESSION_BACKEND", "SESSION_TTL_HOURS",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.Equal(t, config.BackendMemory, cfg.SessionBackend)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedHosts)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("ALLOWED_HOSTS", "https://app.example.com, https://admin.example.com")
	t.Setenv("SESSION_TTL_HOURS", "1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedHosts)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoadRejectsBadSessionBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_BACKEND", "memcached")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRedisBackendRequiresAddr(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_BACKEND", "redis")
	os.Unsetenv("REDIS_ADDR")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendRedis, cfg.SessionBackend)
}
