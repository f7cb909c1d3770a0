package repositories

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/obs"
	"errors"
	"fmt"
	"time"
)

// SQL-backed implementation of the DispatchRepository port.
type SQLDispatchRepository struct{ DB *sql.DB }

func NewSQLDispatchRepository(db *sql.DB) *SQLDispatchRepository {
	return &SQLDispatchRepository{DB: db}
}

func (s *SQLDispatchRepository) ListJobs(ctx context.Context) (_ []domain.ContainerJob, err error) {
	defer obs.Time(ctx, "dispatch.ListJobs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql dispatch repository: DB is nil")
	}

	query := `
	SELECT
		id,
		container_no,
		master_bl,
		customer_ref,
		size,
		type,
		origin,
		destination,
		eta,
		last_free_day,
		status,
		assigned_driver_id,
		potential_demurrage
	FROM container_jobs
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: query container_jobs table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContainerJob, 0, 16)
	for rows.Next() {
		var j domain.ContainerJob
		var eta, lfd, status string
		err := rows.Scan(
			&j.ID, &j.ContainerNo, &j.MasterBL, &j.CustomerRef, &j.Size, &j.Type,
			&j.Origin, &j.Destination, &eta, &lfd, &status, &j.AssignedDriverID, &j.PotentialDemurrage,
		)
		if err != nil {
			return nil, fmt.Errorf("list jobs: scan row: %w", err)
		}

		if j.ETA, err = time.Parse(dateLayout, eta); err != nil {
			return nil, fmt.Errorf("list jobs: id=%s: parse eta: %w", j.ID, err)
		}
		if j.LastFreeDay, err = time.Parse(dateLayout, lfd); err != nil {
			return nil, fmt.Errorf("list jobs: id=%s: parse last free day: %w", j.ID, err)
		}
		j.Status = domain.JobStatus(status)

		out = append(out, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLDispatchRepository) ListDrivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "dispatch.ListDrivers")(&err)

	if s.DB == nil {
		return nil, errors.New("sql dispatch repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		phone,
		license_plate,
		status,
		current_job_id,
		location
	FROM drivers
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0, 16)
	for rows.Next() {
		var d domain.Driver
		var status string
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.LicensePlate, &status, &d.CurrentJobID, &d.Location); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		d.Status = domain.DriverStatus(status)
		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return out, nil
}
