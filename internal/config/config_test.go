package config_test

import (
	"testing"
	"time"

	"go-timeoff/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with env overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "0123456789abcdef-secret")
		t.Setenv("PORT", "8081")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("NOTIFY_FALLBACK_RECIPIENTS", "ops@example.com, hr@example.com ,")
		t.Setenv("NOTIFY_CHANNEL_TIMEOUT", "3s")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 3*time.Second, cfg.Notify.ChannelTimeout)
		assert.Equal(t, 15*time.Second, cfg.Storage.UploadTimeout)
		assert.Equal(t, []string{"ops@example.com", "hr@example.com"}, cfg.Notify.FallbackList())
		assert.Equal(t, "https://sheets.googleapis.com/v4", cfg.Sheets.BaseURL)
		assert.Contains(t, cfg.Database.DSN(), "host=db.internal port=5432")
	})

	t.Run("upload timeout is independent of channel timeout", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "0123456789abcdef-secret")
		t.Setenv("NOTIFY_CHANNEL_TIMEOUT", "2s")
		t.Setenv("OSS_UPLOAD_TIMEOUT", "30s")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Notify.ChannelTimeout)
		assert.Equal(t, 30*time.Second, cfg.Storage.UploadTimeout)
	})

	t.Run("negative missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("negative short jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")

		_, err := config.Load()

		assert.Error(t, err)
	})
}
