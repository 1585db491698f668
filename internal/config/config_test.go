package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("дефолты при минимальном окружении", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("POSTGRES_DSN", "postgres://localhost/test")

		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.HTTPPort)
		assert.Equal(t, 120*time.Second, cfg.RegistrationTime)
		assert.Equal(t, 100, cfg.StartHP)
		assert.Equal(t, 4, cfg.MaxEquip)
		assert.Equal(t, 500, cfg.StartPoints)
		assert.Equal(t, 200, cfg.WinReward)
	})

	t.Run("переопределение баланса", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("POSTGRES_DSN", "postgres://localhost/test")
		t.Setenv("ROUND_TIME", "90s")
		t.Setenv("BASE_STORM", "15")

		cfg, err := Parse()
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.RoundTime)
		assert.Equal(t, 15, cfg.BaseStorm)
	})

	t.Run("без токена ошибка", func(t *testing.T) {
		// t.Setenv регистрирует откат, Unsetenv реально убирает переменную.
		t.Setenv("BOT_TOKEN", "x")
		os.Unsetenv("BOT_TOKEN")
		t.Setenv("POSTGRES_DSN", "postgres://localhost/test")

		_, err := Parse()
		assert.Error(t, err)
	})
}
