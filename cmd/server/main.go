package main

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/adapters/cache"
	"drayage-quote-service/internal/adapters/distance"
	"drayage-quote-service/internal/adapters/repositories"
	"drayage-quote-service/internal/api"
	"drayage-quote-service/internal/config"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/db"
	"drayage-quote-service/internal/ports"
	"drayage-quote-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Google Distance Matrix) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.DBDriver == db.SQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			log.Fatalf("create db dir: %v", err)
		}
	}

	conn, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	// Local SQLite runs are self-contained; Postgres is prepared with cmd/dbtool.
	if cfg.DBDriver == db.SQLite {
		if err := initAndSeed(ctx, conn, cfg); err != nil {
			log.Fatal(err)
		}
	}

	var sampler *domain.LockedSampler
	if cfg.CongestionSeed != nil {
		sampler = domain.NewSeededSampler(*cfg.CongestionSeed)
		log.Printf("congestion jitter seeded seed=%d", *cfg.CongestionSeed)
	} else {
		sampler = domain.NewRandomSampler()
	}

	catalog, err := services.LoadCatalog(ctx, repositories.NewSQLReferenceRepository(conn), sampler)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("catalog loaded ports=%d warehouses=%d", len(catalog.Ports()), len(catalog.EnrichedWarehouses()))

	distanceCache, closeCache, err := newDistanceCache(ctx, conn, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	provider, err := newDistanceProvider(distanceCache, cfg)
	if err != nil {
		log.Fatal(err)
	}

	resolver := services.NewDistanceResolver(provider)
	quotes := services.NewQuoteService(catalog, resolver)
	router := api.NewRouter(quotes, catalog, repositories.NewSQLDispatchRepository(conn))

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(ctx context.Context, conn *sql.DB, cfg config.Config) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromDir(ctx, conn, cfg.DBDriver, cfg.SeedDir, time.Now()); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newDistanceCache returns a nil cache when caching is disabled.
func newDistanceCache(ctx context.Context, conn *sql.DB, cfg config.Config) (ports.DistanceCache, func(), error) {
	noop := func() {}
	if !cfg.DistanceCache {
		return nil, noop, nil
	}

	if cfg.CacheBackend != config.CacheBackendRedis {
		return cache.NewSQLDistanceCache(conn, cfg.DBDriver), noop, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, noop, fmt.Errorf("distance cache: parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, noop, fmt.Errorf("distance cache: ping redis: %w", err)
	}

	log.Printf("distance cache backend=redis addr=%s ttl=%s", opts.Addr, cfg.CacheTTL)
	return cache.NewRedisDistanceCache(client, cfg.CacheTTL), func() { client.Close() }, nil
}

// newDistanceProvider returns a nil provider (heuristic-only mode) when no
// usable API key is configured.
func newDistanceProvider(distanceCache ports.DistanceCache, cfg config.Config) (ports.DistanceProvider, error) {
	p, err := distance.NewGoogleDistanceProvider(cfg.GoogleMapsAPIKey, distanceCache, cfg.DistanceTimeout)
	if errors.Is(err, distance.ErrNoCredential) {
		log.Println("GOOGLE_MAPS_API_KEY not set; quoting with heuristic distances only")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	log.Printf("live distances enabled timeout=%s cache=%t", cfg.DistanceTimeout, distanceCache != nil)
	return p, nil
}
