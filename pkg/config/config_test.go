package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"GEMINI_API_KEY", "GEMINI_IMAGE_MODEL", "GEMINI_ANALYSIS_MODEL", "GEMINI_IMAGE_SIZE",
	"REQUEST_TIMEOUT_SECONDS", "BATCH_CONCURRENCY", "STYLE_LANGUAGE", "LOG_LEVEL", "ALLOW_LOCAL_FILES",
}

// clearEnv はテスト中だけ設定キーを空にします。空文字列は未設定と同じ扱いです。
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("APIキーは必須", func(t *testing.T) {
		clearEnv(t)
		_, err := Load()
		assert.ErrorContains(t, err, "GEMINI_API_KEY")
	})

	t.Run("既定値", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", " secret ")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Config{
			GeminiAPIKey:     "secret",
			ImageModel:       "gemini-3-pro-image-preview",
			AnalysisModel:    "gemini-3-flash-preview",
			ImageSize:        "1K",
			RequestTimeout:   180 * time.Second,
			BatchConcurrency: 2,
			StyleLanguage:    "en",
			LogLevel:         "info",
			AllowLocalFiles:  true,
		}, cfg)
	})

	t.Run("環境変数で上書き", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "secret")
		t.Setenv("GEMINI_IMAGE_MODEL", "image-model")
		t.Setenv("GEMINI_IMAGE_SIZE", "2K")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
		t.Setenv("BATCH_CONCURRENCY", "4")
		t.Setenv("STYLE_LANGUAGE", "ZH")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("ALLOW_LOCAL_FILES", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "image-model", cfg.ImageModel)
		assert.Equal(t, "2K", cfg.ImageSize)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 4, cfg.BatchConcurrency)
		assert.Equal(t, "zh", cfg.StyleLanguage)
		assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
		assert.False(t, cfg.AllowLocalFiles)
	})

	t.Run("不正な値は既定値に戻る", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "secret")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "-5")
		t.Setenv("BATCH_CONCURRENCY", "many")
		t.Setenv("ALLOW_LOCAL_FILES", "maybe")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 180*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 2, cfg.BatchConcurrency)
		assert.True(t, cfg.AllowLocalFiles)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{LogLevel: level}.SlogLevel(), level)
	}
}
