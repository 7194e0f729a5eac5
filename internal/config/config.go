package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	JobBoardAPIURL  string
	SessionSecret   string
	SessionStore    string
	SessionTTL      time.Duration
	RedisAddr       string
	RedisPassword   string
	RequestTimeout  time.Duration
	UpstreamTimeout time.Duration
}

const (
	StoreCookie = "cookie"
	StoreRedis  = "redis"
)

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JobBoardAPIURL:  getEnv("JOBBOARD_API_URL", ""),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionStore:    getEnv("SESSION_STORE", StoreCookie),
		SessionTTL:      getDuration("SESSION_TTL", 12*time.Hour),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 10*time.Second),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 5*time.Second),
	}

	if cfg.JobBoardAPIURL == "" {
		log.Fatal("JOBBOARD_API_URL is required")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	if cfg.SessionStore != StoreCookie && cfg.SessionStore != StoreRedis {
		log.Fatalf("SESSION_STORE must be %q or %q", StoreCookie, StoreRedis)
	}
	if cfg.SessionStore == StoreRedis && cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required when SESSION_STORE=redis")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
