package ports

import "context"

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for retrieving travel distance and duration between locations.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two free-text addresses.
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}

// Persistent store for previously resolved origin->destination pairs.
type DistanceCache interface {
	// Get reports ok=false on a miss; err is reserved for storage failures.
	Get(ctx context.Context, origin, destination string) (result DistanceResult, ok bool, err error)
	Put(ctx context.Context, origin, destination string, result DistanceResult) error
}
