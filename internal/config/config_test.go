package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *Config {
	return &Config{
		Port:       "8080",
		JWTSecret:  "a-development-secret-that-is-long-enough",
		DBPassword: "password",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("development defaults pass", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, devConfig().Validate())
	})

	t.Run("missing port rejected", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret rejected", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret rejected in production", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short secret rejected in production", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "too-short"
		cfg.DBPassword = "s3curep4ss"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected in production", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-production-secret-that-is-long-enough!"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("strong production config passes", func(t *testing.T) {
		t.Parallel()
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-production-secret-that-is-long-enough!"
		cfg.DBPassword = "s3curep4ss"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
