package config

import (
	"drayage-quote-service/internal/platform/db"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Where resolved live distances are cached.
const (
	CacheBackendSQL   = "sql"
	CacheBackendRedis = "redis"
)

type Config struct {
	Port             string
	DBDriver         db.Dialect
	DBPath           string
	DatabaseURL      string
	SeedDir          string
	GoogleMapsAPIKey string
	DistanceTimeout  time.Duration
	DistanceCache    bool
	// CacheBackend is CacheBackendSQL (the service database) or CacheBackendRedis.
	CacheBackend string
	RedisURL     string
	CacheTTL     time.Duration
	// CongestionSeed pins wait-time jitter when set.
	CongestionSeed *uint64
}

// Get returns the environment value for key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func Load() (Config, error) {
	driver, err := db.ParseDialect(Get("DB_DRIVER", "sqlite"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	timeout, err := time.ParseDuration(Get("DISTANCE_TIMEOUT", "4s"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: DISTANCE_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("load config: DISTANCE_TIMEOUT must be positive, got %s", timeout)
	}

	useCache, err := strconv.ParseBool(Get("DISTANCE_CACHE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: DISTANCE_CACHE: %w", err)
	}

	backend := strings.ToLower(Get("DISTANCE_CACHE_BACKEND", CacheBackendSQL))
	if backend != CacheBackendSQL && backend != CacheBackendRedis {
		return Config{}, fmt.Errorf("load config: DISTANCE_CACHE_BACKEND must be %q or %q, got %q", CacheBackendSQL, CacheBackendRedis, backend)
	}

	ttl, err := time.ParseDuration(Get("DISTANCE_CACHE_TTL", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: DISTANCE_CACHE_TTL: %w", err)
	}

	cfg := Config{
		Port:             Get("PORT", "8080"),
		DBDriver:         driver,
		DBPath:           Get("DB_PATH", "data/app.db"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SeedDir:          Get("SEED_DIR", "data/seeds"),
		GoogleMapsAPIKey: strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		DistanceTimeout:  timeout,
		DistanceCache:    useCache,
		CacheBackend:     backend,
		RedisURL:         Get("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:         ttl,
	}

	if s := Get("CONGESTION_SEED", ""); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("load config: CONGESTION_SEED: %w", err)
		}
		cfg.CongestionSeed = &seed
	}

	if cfg.DBDriver == db.Postgres && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("load config: DATABASE_URL is required when DB_DRIVER=%s", cfg.DBDriver)
	}

	return cfg, nil
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == db.Postgres {
		return c.DatabaseURL
	}
	return c.DBPath
}
