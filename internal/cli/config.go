package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration
type Config struct {
	Depth     int
	CacheSize int
	Storage   string
	TileLog   string
	RedisURL  string
	Output    string
	LogLevel  string
	NoColor   bool
}

// DefaultConfig returns a Config with default values. A .env file in the working
// directory is loaded first; variables already set in the environment win.
func DefaultConfig() *Config {
	_ = godotenv.Load() // A missing .env is fine

	return &Config{
		Depth:     getEnvIntOrDefault("BANKER_DEPTH", 6),
		CacheSize: getEnvIntOrDefault("BANKER_CACHE_SIZE", 0),
		Storage:   getEnvOrDefault("BANKER_STORAGE", "file"),
		TileLog:   getEnvOrDefault("BANKER_TILE_LOG", "tiles.txt"),
		RedisURL:  getEnvOrDefault("BANKER_REDIS_URL", "redis://localhost:6379"),
		Output:    getEnvOrDefault("BANKER_OUTPUT", "text"),
		LogLevel:  getEnvOrDefault("BANKER_LOG_LEVEL", "warn"),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

// SlogLevel maps LogLevel onto a slog level, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
