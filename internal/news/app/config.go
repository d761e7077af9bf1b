package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Issuer claim for session tokens (default: nc-news)
	JWTSecret string // HS256 signing secret; generated randomly when unset
	CSRFKey   string // HMAC key for deriving per-session CSRF secrets; generated randomly when unset

	SessionTTL   time.Duration // Session token lifetime (default: 24h)
	DatabaseFile string        // Path to SQLite database file (default: ./news.db)
	PepperFile   string        // Path to file containing pepper for password hashing (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("NEWS_ISSUER", "nc-news"),
		JWTSecret: os.Getenv("NEWS_JWT_SECRET"),
		CSRFKey:   os.Getenv("NEWS_CSRF_KEY"),

		SessionTTL:   getEnvDurationOrDefault("NEWS_SESSION_TTL", 24*time.Hour),
		DatabaseFile: getEnvOrDefault("NEWS_DATABASE_FILE", "news.db"),
		PepperFile:   getEnvOrDefault("NEWS_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
