package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// 本リポジトリは配備面を持たないため、必須の環境変数は無く
// すべて既定値つきの任意項目とする。
type Config struct {
	// Logging
	LogLevel slog.Level

	// Seed
	SeedEnabled bool

	// Security
	SanitizeEnabled bool
}

// Load は環境変数からConfigを読み込む。
func Load() *Config {
	return &Config{
		LogLevel:        parseLogLevel(getEnvString("LOG_LEVEL", "info")),
		SeedEnabled:     getEnvBool("SEED_ENABLED", true),
		SanitizeEnabled: getEnvBool("SANITIZE_ENABLED", true),
	}
}

func parseLogLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
