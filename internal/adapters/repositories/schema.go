package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates every table the service needs. The DDL is restricted to
// types and clauses understood by both SQLite and Postgres, and is idempotent.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPortsQuery := `
	CREATE TABLE IF NOT EXISTS ports (
		code TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		region TEXT NOT NULL
	);
	`

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		code TEXT PRIMARY KEY,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL,
		is_remote BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		license_plate TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		current_job_id TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT ''
	);
	`

	// Dates are ISO calendar days (YYYY-MM-DD) to keep both dialects identical.
	createJobsQuery := `
	CREATE TABLE IF NOT EXISTS container_jobs (
		id TEXT PRIMARY KEY,
		container_no TEXT NOT NULL,
		master_bl TEXT NOT NULL DEFAULT '',
		customer_ref TEXT NOT NULL DEFAULT '',
		size TEXT NOT NULL,
		type TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		eta TEXT NOT NULL,
		last_free_day TEXT NOT NULL,
		status TEXT NOT NULL,
		assigned_driver_id TEXT NOT NULL DEFAULT '',
		potential_demurrage DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_container_jobs_last_free_day
    ON container_jobs(last_free_day);
	`

	statements := []string{
		createPortsQuery,
		createWarehousesQuery,
		createDriversQuery,
		createJobsQuery,
		createDistanceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
