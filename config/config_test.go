package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test; t.Setenv restores them.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "APP_ENV", "DB_DRIVER", "DB_MAX_CONNS", "DB_QUERY_TIMEOUT", "CORS_ALLOWED_ORIGINS", "UPSTASH_REDIS_URL", "AUDIT_LOG_ENABLED")
	t.Setenv("DATABASE_URL", "postgres://localhost/candidates")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.True(t, cfg.AuditLogEnabled)
	assert.Equal(t, 10*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_QUERY_TIMEOUT", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example/ , ,https://b.example")
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")
	t.Setenv("AUDIT_LOG_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 3*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.False(t, cfg.AuditLogEnabled)
}

func TestLoadConfigUnknownDriverFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.DBDriver)
}
