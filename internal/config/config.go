package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Transport synthesis
	TransportProfileFile string // optional YAML override for mode speeds/costs
	DistanceSeed         uint64 // seed for the distance source (0 = derive from clock)

	// Plan lifecycle
	PlanTTL        time.Duration // how long a working plan copy lives in Redis
	CheckpointTTL  time.Duration // how long a session checkpoint survives
	SessionIdleTTL time.Duration // evict in-memory sessions idle beyond this
	GCInterval     time.Duration // how often the session GC runs

	// Auth (tokens issued by the hosted identity service; we only verify)
	JWTSecret string

	// CORS
	AllowedOrigins []string // browser origins allowed to call the API

	// Rate limiting
	RateLimitBurst  int // bucket capacity per client IP
	RateLimitPerMin int // refill rate per client IP per minute
	TrustProxy      bool

	// Redis
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration
	RedisRetryInterval  time.Duration
	RedisMaxWait        time.Duration
	RedisPingTimeout    time.Duration
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DAYWEAVE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DAYWEAVE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DAYWEAVE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DAYWEAVE_PRETTY_LOG", false),

		// Transport synthesis
		TransportProfileFile: getenv("DAYWEAVE_TRANSPORT_PROFILE", ""),
		DistanceSeed:         mustUint64("DAYWEAVE_DISTANCE_SEED", 0),

		// Plan lifecycle
		PlanTTL:        mustDuration("DAYWEAVE_PLAN_TTL", 72*time.Hour),
		CheckpointTTL:  mustDuration("DAYWEAVE_CHECKPOINT_TTL", 30*time.Minute),
		SessionIdleTTL: mustDuration("DAYWEAVE_SESSION_IDLE_TTL", 6*time.Hour),
		GCInterval:     mustDuration("DAYWEAVE_GC_INTERVAL", time.Hour),

		// Auth
		JWTSecret: requireEnv("DAYWEAVE_JWT_SECRET"),

		// CORS
		AllowedOrigins: splitAndTrim(getenv("DAYWEAVE_ALLOWED_ORIGINS", "*")),

		// Rate limiting
		RateLimitBurst:  getenvInt("DAYWEAVE_RATE_LIMIT_BURST", 20),
		RateLimitPerMin: getenvInt("DAYWEAVE_RATE_LIMIT_PER_MIN", 60),
		TrustProxy:      mustBool("DAYWEAVE_TRUST_PROXY", false),

		// Redis settings
		RedisAddr:           requireEnv("DAYWEAVE_REDIS_ADDR"),
		RedisUser:           getenv("DAYWEAVE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("DAYWEAVE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DAYWEAVE_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("DAYWEAVE_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("DAYWEAVE_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("DAYWEAVE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("DAYWEAVE_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("DAYWEAVE_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("DAYWEAVE_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("DAYWEAVE_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("DAYWEAVE_REDIS_PING_TIMEOUT", 5*time.Second),
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

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
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

func mustUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
