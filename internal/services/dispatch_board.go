package services

import (
	"cmp"
	"context"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/ports"
	"fmt"
	"slices"
	"time"
)

type BoardJob struct {
	Job      domain.ContainerJob
	Urgency  domain.JobUrgency
	IsRemote bool
}

// DispatchBoard is a read-only snapshot of active container jobs and the driver roster.
type DispatchBoard struct {
	GeneratedAt  time.Time
	Jobs         []BoardJob
	Drivers      []domain.Driver
	CriticalJobs int
	IdleDrivers  int
}

// BuildDispatchBoard lists jobs still waiting on a truck, most urgent last
// free day first, with urgency and remote-destination annotations. It does
// not assign drivers.
func BuildDispatchBoard(
	ctx context.Context,
	repo ports.DispatchRepository,
	remote map[string]bool,
	now time.Time,
) (*DispatchBoard, error) {
	jobs, err := repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("build dispatch board: list jobs: %w", err)
	}

	drivers, err := repo.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("build dispatch board: list drivers: %w", err)
	}

	board := &DispatchBoard{
		GeneratedAt: now,
		Jobs:        make([]BoardJob, 0, len(jobs)),
		Drivers:     drivers,
	}

	for _, j := range jobs {
		if !j.Status.Active() {
			continue
		}

		urgency := domain.UrgencyFor(j.LastFreeDay, now)
		if urgency == domain.UrgencyCritical {
			board.CriticalJobs++
		}

		board.Jobs = append(board.Jobs, BoardJob{
			Job:      j,
			Urgency:  urgency,
			IsRemote: remote[j.Destination],
		})
	}

	// Tie-breaker on ID keeps the board order deterministic.
	slices.SortStableFunc(board.Jobs, func(a, b BoardJob) int {
		if c := a.Job.LastFreeDay.Compare(b.Job.LastFreeDay); c != 0 {
			return c
		}
		return cmp.Compare(a.Job.ID, b.Job.ID)
	})

	for _, d := range drivers {
		if d.Status == domain.DriverIdle {
			board.IdleDrivers++
		}
	}

	return board, nil
}
