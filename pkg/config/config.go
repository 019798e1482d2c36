// Package config は環境変数（および .env ファイル）から実行時設定を読み込みます。
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config は生成クライアントの実行時設定です。
type Config struct {
	GeminiAPIKey     string
	ImageModel       string
	AnalysisModel    string
	ImageSize        string
	RequestTimeout   time.Duration
	BatchConcurrency int
	StyleLanguage    string
	LogLevel         string
	AllowLocalFiles  bool
}

// Load は .env を読み込んだ後、環境変数から設定を組み立てます。.env がなくてもエラーにはしません。
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		ImageModel:       getEnv("GEMINI_IMAGE_MODEL", "gemini-3-pro-image-preview"),
		AnalysisModel:    getEnv("GEMINI_ANALYSIS_MODEL", "gemini-3-flash-preview"),
		ImageSize:        getEnv("GEMINI_IMAGE_SIZE", "1K"),
		RequestTimeout:   time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 180)) * time.Second,
		BatchConcurrency: getEnvInt("BATCH_CONCURRENCY", 2),
		StyleLanguage:    strings.ToLower(getEnv("STYLE_LANGUAGE", "en")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AllowLocalFiles:  getEnvBool("ALLOW_LOCAL_FILES", true),
	}

	if cfg.GeminiAPIKey == "" {
		return Config{}, errors.New("GEMINI_API_KEY is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 180 * time.Second
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 1
	}

	return cfg, nil
}

// SlogLevel は LogLevel を slog のレベルに変換します。未知の値は Info です。
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
