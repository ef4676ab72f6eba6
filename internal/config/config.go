package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// BackendURL is the base URL of the campus REST backend every
	// resource client talks to.
	BackendURL string

	JWTSecret string

	// Redis & caching
	RedisURL     string
	CacheTTLList time.Duration

	// Rate limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	CORSOrigins []string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	BackendReadTimeout     time.Duration
	BackendWriteTimeout    time.Duration
	BackendDownloadTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8090")
	cfg.BackendURL = getEnv("BACKEND_URL", "http://localhost:5000")

	cfg.JWTSecret = getEnv("JWT_SECRET", "change-me-secret")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLList = getDuration("CACHE_TTL_LIST", 15*time.Second)

	// Rate limiting defaults: 120 reqs / 1 min
	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 120)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.CORSOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 60*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	cfg.BackendReadTimeout = getDuration("BACKEND_READ_TIMEOUT", 2*time.Second)
	cfg.BackendWriteTimeout = getDuration("BACKEND_WRITE_TIMEOUT", 5*time.Second)
	cfg.BackendDownloadTimeout = getDuration("BACKEND_DOWNLOAD_TIMEOUT", 30*time.Second)

	return cfg
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
