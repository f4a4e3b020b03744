package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the process reads from the environment.
// It is loaded once in main and passed by value to the packages that
// need it; nothing else in the codebase touches os.Getenv.
type Config struct {
	Addr        string
	PostgresDSN string
	RedisAddr   string

	AuthSecret string
	TokenTTL   time.Duration
	CookieName string

	CORSOrigin      string
	MaxBodyBytes    int64
	RateLimitBurst  int
	RateLimitPerSec int

	ShutdownTimeout time.Duration
}

// Load reads the environment and applies defaults.
func Load() Config {
	return Config{
		Addr:            getenv("AUREON_ADDR", ":8080"),
		PostgresDSN:     getenv("AUREON_PG_DSN", ""),
		RedisAddr:       getenv("AUREON_REDIS_ADDR", ""),
		AuthSecret:      strings.TrimSpace(getenv("AUREON_AUTH_SECRET", "")),
		TokenTTL:        getenvDuration("AUREON_TOKEN_TTL", 24*time.Hour),
		CookieName:      getenv("AUREON_COOKIE_NAME", "aureon_token"),
		CORSOrigin:      getenv("AUREON_CORS_ORIGIN", "http://localhost:5173"),
		MaxBodyBytes:    getenvInt64("AUREON_MAX_BODY_BYTES", 1<<20),
		RateLimitBurst:  getenvInt("AUREON_RATE_BURST", 20),
		RateLimitPerSec: getenvInt("AUREON_RATE_PER_SEC", 10),
		ShutdownTimeout: getenvDuration("AUREON_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
