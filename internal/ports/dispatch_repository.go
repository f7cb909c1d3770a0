package ports

import (
	"context"
	"drayage-quote-service/internal/domain"
)

// Port: read-only access to container jobs and the driver roster.
type DispatchRepository interface {
	ListJobs(ctx context.Context) ([]domain.ContainerJob, error)
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
}
