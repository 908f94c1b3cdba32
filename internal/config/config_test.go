package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "0123456789abcdef0123456789abcdef"

// clearEnv blanks every key LoadConfig reads so host settings do not leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GO_ENV", "HTTP_HOST", "HTTP_PORT", "DB_DRIVER", "DATABASE_URL", "JWT_SECRET",
		"ACCESS_TOKEN_TTL", "COOKIE_NAME", "COOKIE_SECURE", "LOGIN_RATE_PER_MINUTE",
		"LOGIN_RATE_BURST", "REDIS_URL", "REDIS_PASSWORD", "LOG_LEVEL", "LOG_FORMAT",
		"CORS_ORIGINS", "DOCUMENT_DIR", "DOCUMENT_FONT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", validSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, "dorm_session", cfg.CookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "./data/documents", cfg.DocumentDir)
	assert.Empty(t, cfg.RedisURL)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("GO_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "./data/dorm.db")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("JWT_SECRET", validSecret)
		t.Setenv("HTTP_PORT", "eighty")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "HTTP_PORT")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", validSecret)
		t.Setenv("ACCESS_TOKEN_TTL", "forever")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "ACCESS_TOKEN_TTL")
	})
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := &Config{
		HTTPPort:           0,
		DBDriver:           "mysql",
		DatabaseURL:        "",
		LogLevel:           "loud",
		LogFormat:          "xml",
		JWTSecret:          "short",
		AccessTokenTTL:     0,
		LoginRatePerMinute: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"HTTP_PORT", "DB_DRIVER", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "JWT_SECRET", "ACCESS_TOKEN_TTL", "LOGIN_RATE"} {
		assert.Contains(t, err.Error(), key)
	}
}
