package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file and fills defaults", func(t *testing.T) {
		// Given: a config file with storage and board sections
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
storage: postgres
postgres:
  dsn: postgres://user:pass@db:5432/kalah?sslmode=disable
board:
  pits-per-side: 4
  stones-per-pit: 3
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values are used and the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StoragePostgres, conf.Storage)
		assert.Equal(t, "postgres://user:pass@db:5432/kalah?sslmode=disable", conf.Postgres.DSN)
		assert.Equal(t, 25, conf.Postgres.MaxOpenConns)
		assert.Equal(t, 5*time.Minute, conf.Postgres.ConnMaxLifetime)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
		assert.Equal(t, kalah.Config{PitsPerSide: 4, StonesPerPit: 3}, conf.Board.Kalah())
	})

	t.Run("Falls back to the environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a port in the environment
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("REDIS_HOST", "cache")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults and environment values are used
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, kalah.DefaultConfig(), conf.Board.Kalah())
	})

	t.Run("Rejects an unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: mongo\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("Rejects an invalid board", func(t *testing.T) {
		path := writeConfig(t, "board:\n  pits-per-side: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, kalah.ErrInvalidConfig)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "storage: [unterminated\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
