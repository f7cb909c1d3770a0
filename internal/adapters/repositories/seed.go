package repositories

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/db"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type PortSeed struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Region  string `json:"region"`
}

type WarehouseSeed struct {
	Code     string `json:"code"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Region   string `json:"region"`
	IsRemote bool   `json:"is_remote"`
}

type DriverSeed struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	LicensePlate string `json:"license_plate"`
	Status       string `json:"status"`
	CurrentJobID string `json:"current_job_id"`
	Location     string `json:"location"`
}

// JobSeed dates are day offsets from the seeding day so demo data never goes stale.
type JobSeed struct {
	ID                 string  `json:"id"`
	ContainerNo        string  `json:"container_no"`
	MasterBL           string  `json:"master_bl"`
	CustomerRef        string  `json:"customer_ref"`
	Size               string  `json:"size"`
	Type               string  `json:"type"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	ETAOffsetDays      int     `json:"eta_offset_days"`
	LFDOffsetDays      int     `json:"lfd_offset_days"`
	Status             string  `json:"status"`
	AssignedDriverID   string  `json:"assigned_driver_id"`
	PotentialDemurrage float64 `json:"potential_demurrage"`
}

// SeedFromDir upserts reference and dispatch data from ports.json,
// warehouses.json, drivers.json and jobs.json in dir. The first two are
// required; the dispatch files are skipped when absent. Job dates are
// resolved relative to today.
func SeedFromDir(ctx context.Context, conn *sql.DB, dialect db.Dialect, dir string, today time.Time) error {
	if conn == nil {
		return errors.New("seed: DB is nil")
	}

	var (
		portSeeds      []PortSeed
		warehouseSeeds []WarehouseSeed
		driverSeeds    []DriverSeed
		jobSeeds       []JobSeed
	)
	if err := readSeed(filepath.Join(dir, "ports.json"), true, &portSeeds); err != nil {
		return err
	}
	if err := readSeed(filepath.Join(dir, "warehouses.json"), true, &warehouseSeeds); err != nil {
		return err
	}
	if err := readSeed(filepath.Join(dir, "drivers.json"), false, &driverSeeds); err != nil {
		return err
	}
	if err := readSeed(filepath.Join(dir, "jobs.json"), false, &jobSeeds); err != nil {
		return err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedPorts(ctx, tx, dialect, portSeeds); err != nil {
		return err
	}
	if err := seedWarehouses(ctx, tx, dialect, warehouseSeeds); err != nil {
		return err
	}
	if err := seedDrivers(ctx, tx, dialect, driverSeeds); err != nil {
		return err
	}
	if err := seedJobs(ctx, tx, dialect, jobSeeds, today); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	log.Printf("seed complete dir=%s ports=%d warehouses=%d drivers=%d jobs=%d",
		dir, len(portSeeds), len(warehouseSeeds), len(driverSeeds), len(jobSeeds))

	return nil
}

func readSeed(path string, required bool, dst any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		log.Printf("seed: %s not found, skipping", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", path, err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("seed: parse %q: %w", path, err)
	}
	return nil
}

func seedPorts(ctx context.Context, tx *sql.Tx, dialect db.Dialect, seeds []PortSeed) error {
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO ports (code, position, name, address, city, state, region)
	VALUES (%s)
	ON CONFLICT (code) DO UPDATE
	SET position = EXCLUDED.position,
		name = EXCLUDED.name,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		region = EXCLUDED.region;
	`, dialect.Placeholders(7)))
	if err != nil {
		return fmt.Errorf("seed ports: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range seeds {
		code := strings.TrimSpace(p.Code)
		if code == "" {
			return fmt.Errorf("seed ports: item at index %d: code cannot be empty", i+1)
		}
		region, err := parseRegion(p.Region)
		if err != nil {
			return fmt.Errorf("seed ports: code=%s: %w", code, err)
		}

		if _, err := stmt.ExecContext(ctx, code, i, p.Name, p.Address, p.City, p.State, string(region)); err != nil {
			return fmt.Errorf("seed ports: insert code=%s: %w", code, err)
		}
	}
	return nil
}

func seedWarehouses(ctx context.Context, tx *sql.Tx, dialect db.Dialect, seeds []WarehouseSeed) error {
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO warehouses (code, address, city, state, zip, region, is_remote)
	VALUES (%s)
	ON CONFLICT (code) DO UPDATE
	SET address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		zip = EXCLUDED.zip,
		region = EXCLUDED.region,
		is_remote = EXCLUDED.is_remote;
	`, dialect.Placeholders(7)))
	if err != nil {
		return fmt.Errorf("seed warehouses: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range seeds {
		code := strings.TrimSpace(w.Code)
		if code == "" {
			return fmt.Errorf("seed warehouses: item at index %d: code cannot be empty", i+1)
		}
		region, err := parseRegion(w.Region)
		if err != nil {
			return fmt.Errorf("seed warehouses: code=%s: %w", code, err)
		}

		if _, err := stmt.ExecContext(ctx, code, w.Address, w.City, w.State, w.Zip, string(region), w.IsRemote); err != nil {
			return fmt.Errorf("seed warehouses: insert code=%s: %w", code, err)
		}
	}
	return nil
}

func seedDrivers(ctx context.Context, tx *sql.Tx, dialect db.Dialect, seeds []DriverSeed) error {
	if len(seeds) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO drivers (id, name, phone, license_plate, status, current_job_id, location)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		phone = EXCLUDED.phone,
		license_plate = EXCLUDED.license_plate,
		status = EXCLUDED.status,
		current_job_id = EXCLUDED.current_job_id,
		location = EXCLUDED.location;
	`, dialect.Placeholders(7)))
	if err != nil {
		return fmt.Errorf("seed drivers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range seeds {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("seed drivers: item at index %d: id cannot be empty", i+1)
		}
		if !domain.DriverStatus(d.Status).Valid() {
			return fmt.Errorf("seed drivers: id=%s: unknown status %q", id, d.Status)
		}

		if _, err := stmt.ExecContext(ctx, id, d.Name, d.Phone, d.LicensePlate, d.Status, d.CurrentJobID, d.Location); err != nil {
			return fmt.Errorf("seed drivers: insert id=%s: %w", id, err)
		}
	}
	return nil
}

func seedJobs(ctx context.Context, tx *sql.Tx, dialect db.Dialect, seeds []JobSeed, today time.Time) error {
	if len(seeds) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO container_jobs (
		id, container_no, master_bl, customer_ref, size, type, origin, destination,
		eta, last_free_day, status, assigned_driver_id, potential_demurrage
	)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE
	SET container_no = EXCLUDED.container_no,
		master_bl = EXCLUDED.master_bl,
		customer_ref = EXCLUDED.customer_ref,
		size = EXCLUDED.size,
		type = EXCLUDED.type,
		origin = EXCLUDED.origin,
		destination = EXCLUDED.destination,
		eta = EXCLUDED.eta,
		last_free_day = EXCLUDED.last_free_day,
		status = EXCLUDED.status,
		assigned_driver_id = EXCLUDED.assigned_driver_id,
		potential_demurrage = EXCLUDED.potential_demurrage;
	`, dialect.Placeholders(13)))
	if err != nil {
		return fmt.Errorf("seed jobs: prepare insert: %w", err)
	}
	defer stmt.Close()

	y, m, d := today.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for i, j := range seeds {
		id := strings.TrimSpace(j.ID)
		if id == "" {
			return fmt.Errorf("seed jobs: item at index %d: id cannot be empty", i+1)
		}
		if !domain.JobStatus(j.Status).Valid() {
			return fmt.Errorf("seed jobs: id=%s: unknown status %q", id, j.Status)
		}

		eta := day.AddDate(0, 0, j.ETAOffsetDays).Format(dateLayout)
		lfd := day.AddDate(0, 0, j.LFDOffsetDays).Format(dateLayout)

		if _, err := stmt.ExecContext(ctx,
			id, j.ContainerNo, j.MasterBL, j.CustomerRef, j.Size, j.Type, j.Origin, j.Destination,
			eta, lfd, j.Status, j.AssignedDriverID, j.PotentialDemurrage,
		); err != nil {
			return fmt.Errorf("seed jobs: insert id=%s: %w", id, err)
		}
	}
	return nil
}

func parseRegion(s string) (domain.Region, error) {
	switch r := domain.Region(strings.TrimSpace(s)); r {
	case domain.RegionWest, domain.RegionEast, domain.RegionSouth:
		return r, nil
	default:
		return "", fmt.Errorf("unknown region %q", s)
	}
}
