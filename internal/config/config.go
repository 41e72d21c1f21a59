package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SourcesFile     string        // optional path to sources.yaml (upstream endpoints + playlist ids)
	RefreshInterval time.Duration // interval between upstream refresh cycles (default: 1m)
	FetchTimeout    time.Duration // per-refresh upstream fetch budget (default: 30s)
	YouTubeAPIKey   string        // optional, empty = playlist adapters disabled

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisRetryMaxWait   time.Duration // cap on the retry backoff
	RedisPingTimeout    time.Duration // timeout per ping attempt
}

func Load() *Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CONTESTHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CONTESTHUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CONTESTHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CONTESTHUB_PRETTY_LOG", true),

		// Upstream sources
		SourcesFile:     getenv("CONTESTHUB_SOURCES_FILE", ""),
		RefreshInterval: mustDuration("CONTESTHUB_REFRESH_INTERVAL", time.Minute),
		FetchTimeout:    mustDuration("CONTESTHUB_FETCH_TIMEOUT", 30*time.Second),
		YouTubeAPIKey:   getenv("CONTESTHUB_YOUTUBE_API_KEY", ""),

		// Redis settings
		RedisAddr:           getenv("CONTESTHUB_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("CONTESTHUB_REDIS_USERNAME", ""),
		RedisPassword:       getenv("CONTESTHUB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CONTESTHUB_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("CONTESTHUB_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("CONTESTHUB_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("CONTESTHUB_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("CONTESTHUB_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("CONTESTHUB_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("CONTESTHUB_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisRetryMaxWait:   mustDuration("CONTESTHUB_REDIS_RETRY_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("CONTESTHUB_REDIS_PING_TIMEOUT", 5*time.Second),
	}

	if cfg.RefreshInterval < 10*time.Second {
		panic(fmt.Sprintf("❌ FATAL: CONTESTHUB_REFRESH_INTERVAL too small (%s), upstream APIs would be hammered", cfg.RefreshInterval))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
