package services

import (
	"context"
	"drayage-quote-service/internal/domain"
	"errors"
	"testing"
	"time"
)

type stubDispatchRepo struct {
	jobs    []domain.ContainerJob
	drivers []domain.Driver
	err     error
}

func (r stubDispatchRepo) ListJobs(ctx context.Context) ([]domain.ContainerJob, error) {
	return r.jobs, r.err
}

func (r stubDispatchRepo) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	return r.drivers, nil
}

func TestBuildDispatchBoard(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return time.Date(2026, 3, 10+offset, 0, 0, 0, 0, time.UTC) }

	repo := stubDispatchRepo{
		jobs: []domain.ContainerJob{
			{ID: "JOB-3", Destination: "LGB8", LastFreeDay: day(2), Status: domain.JobPending},
			{ID: "JOB-1", Destination: "GYR3", LastFreeDay: day(0), Status: domain.JobDispatched},
			{ID: "JOB-2", Destination: "ONT8", LastFreeDay: day(-1), Status: domain.JobPending},
			{ID: "JOB-0", Destination: "ONT8", LastFreeDay: day(0), Status: domain.JobPending},
			{ID: "JOB-9", Destination: "ONT8", LastFreeDay: day(-5), Status: domain.JobEmptyReturned},
		},
		drivers: []domain.Driver{
			{ID: "D1", Status: domain.DriverIdle},
			{ID: "D2", Status: domain.DriverHaulingLoad},
			{ID: "D3", Status: domain.DriverIdle},
		},
	}

	board, err := BuildDispatchBoard(context.Background(), repo, map[string]bool{"GYR3": true}, now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantOrder := []string{"JOB-2", "JOB-0", "JOB-1", "JOB-3"}
	wantUrgency := []domain.JobUrgency{domain.UrgencyExpired, domain.UrgencyCritical, domain.UrgencyCritical, domain.UrgencyMedium}
	if len(board.Jobs) != len(wantOrder) {
		t.Fatalf("jobs = %d, want %d", len(board.Jobs), len(wantOrder))
	}
	for i, bj := range board.Jobs {
		if bj.Job.ID != wantOrder[i] {
			t.Errorf("[%d] = %s, want %s", i, bj.Job.ID, wantOrder[i])
		}
		if bj.Urgency != wantUrgency[i] {
			t.Errorf("[%d] urgency = %s, want %s", i, bj.Urgency, wantUrgency[i])
		}
		if bj.IsRemote != (bj.Job.Destination == "GYR3") {
			t.Errorf("[%d] IsRemote = %v", i, bj.IsRemote)
		}
	}

	if board.CriticalJobs != 2 {
		t.Errorf("critical = %d, want 2", board.CriticalJobs)
	}
	if board.IdleDrivers != 2 || len(board.Drivers) != 3 {
		t.Errorf("idle = %d drivers = %d", board.IdleDrivers, len(board.Drivers))
	}
	if !board.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v", board.GeneratedAt)
	}
}

func TestBuildDispatchBoardRepoError(t *testing.T) {
	boom := errors.New("boom")
	_, err := BuildDispatchBoard(context.Background(), stubDispatchRepo{err: boom}, nil, time.Now())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
