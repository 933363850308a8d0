package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearPoolEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	} {
		t.Setenv(key, "")
	}
}

func TestPoolConfigFromEnv(t *testing.T) {
	t.Run("defaults when nothing set", func(t *testing.T) {
		clearPoolEnv(t)

		assert.Equal(t, DefaultPoolConfig(), poolConfigFromEnv())
	})

	t.Run("overrides applied", func(t *testing.T) {
		clearPoolEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "100")
		t.Setenv("DB_MAX_IDLE_CONNS", "50")
		t.Setenv("DB_CONN_MAX_LIFETIME", "2h")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "45m")

		cfg := poolConfigFromEnv()
		assert.Equal(t, 100, cfg.MaxOpenConns)
		assert.Equal(t, 50, cfg.MaxIdleConns)
		assert.Equal(t, 2*time.Hour, cfg.ConnMaxLifetime)
		assert.Equal(t, 45*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("partial overrides keep other defaults", func(t *testing.T) {
		clearPoolEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "75")

		cfg := poolConfigFromEnv()
		assert.Equal(t, 75, cfg.MaxOpenConns)
		assert.Equal(t, DefaultPoolConfig().MaxIdleConns, cfg.MaxIdleConns)
	})

	t.Run("bad overrides fall back", func(t *testing.T) {
		clearPoolEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "many")
		t.Setenv("DB_MAX_IDLE_CONNS", "-5")
		t.Setenv("DB_CONN_MAX_LIFETIME", "0s")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "soon")

		assert.Equal(t, DefaultPoolConfig(), poolConfigFromEnv())
	})
}
