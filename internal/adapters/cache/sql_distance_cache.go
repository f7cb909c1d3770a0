package cache

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/platform/db"
	"drayage-quote-service/internal/platform/obs"
	"drayage-quote-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

// SQLDistanceCache is a SQL-backed cache for origin->destination distance results.
// Keys are expected to be normalized by the caller.
type SQLDistanceCache struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLDistanceCache(conn *sql.DB, dialect db.Dialect) *SQLDistanceCache {
	return &SQLDistanceCache{DB: conn, Dialect: dialect}
}

var _ ports.DistanceCache = (*SQLDistanceCache)(nil)

// Get returns the cached result for one pair; ok is false on a miss.
func (s *SQLDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return ports.DistanceResult{}, false, errors.New("distance cache: db is nil")
	}

	if origin == "" || destination == "" {
		return ports.DistanceResult{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q := fmt.Sprintf(`
	SELECT distance_meters, duration_seconds
    FROM distance_cache
    WHERE origin = %s
        AND destination = %s;
	`, s.Dialect.Placeholder(1), s.Dialect.Placeholder(2))

	var r ports.DistanceResult
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&r.DistanceMeters, &r.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return r, true, nil
}

// Put stores or replaces the result for one pair.
func (s *SQLDistanceCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	r ports.DistanceResult,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	// ON CONFLICT ... DO UPDATE is understood by both Postgres and SQLite 3.24+.
	q := fmt.Sprintf(`
	INSERT INTO distance_cache (origin, destination, distance_meters, duration_seconds)
    VALUES (%s)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`, s.Dialect.Placeholders(4))

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, r.DistanceMeters, r.DurationSeconds); err != nil {
		return fmt.Errorf("insert distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
