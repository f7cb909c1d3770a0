package repositories

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the ReferenceRepository port.
type SQLReferenceRepository struct{ DB *sql.DB }

func NewSQLReferenceRepository(db *sql.DB) *SQLReferenceRepository {
	return &SQLReferenceRepository{DB: db}
}

// Return ports in seed order.
func (s *SQLReferenceRepository) ListPorts(ctx context.Context) (_ []domain.Port, err error) {
	defer obs.Time(ctx, "reference.ListPorts")(&err)

	if s.DB == nil {
		return nil, errors.New("sql reference repository: DB is nil")
	}

	query := `
	SELECT
		code,
		name,
		address,
		city,
		state,
		region
	FROM ports
	ORDER BY position, code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ports: query ports table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Port, 0, 8)
	for rows.Next() {
		var p domain.Port
		var region string
		if err := rows.Scan(&p.Code, &p.Name, &p.Address, &p.City, &p.State, &region); err != nil {
			return nil, fmt.Errorf("list ports: scan row: %w", err)
		}
		p.Region = domain.Region(region)
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ports: row iteration: %w", err)
	}

	return out, nil
}

// Return base warehouse records ordered by code.
func (s *SQLReferenceRepository) ListWarehouses(ctx context.Context) (_ []domain.Warehouse, err error) {
	defer obs.Time(ctx, "reference.ListWarehouses")(&err)

	if s.DB == nil {
		return nil, errors.New("sql reference repository: DB is nil")
	}

	query := `
	SELECT
		code,
		address,
		city,
		state,
		zip,
		region,
		is_remote
	FROM warehouses
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query warehouses table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Warehouse, 0, 32)
	for rows.Next() {
		var w domain.Warehouse
		var region string
		if err := rows.Scan(&w.Code, &w.Address, &w.City, &w.State, &w.Zip, &region, &w.IsRemote); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		w.Region = domain.Region(region)
		out = append(out, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return out, nil
}
