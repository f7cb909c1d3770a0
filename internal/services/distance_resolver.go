package services

import (
	"context"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/obs"
	"drayage-quote-service/internal/ports"
	"log"
	"math"
	"strings"

	"golang.org/x/sync/singleflight"
)

const metersToMiles = 0.000621371

// DistanceResolver turns a DistanceProvider into a best-effort lookup: every
// failure collapses to nil so the caller can fall back to the heuristic.
// Concurrent lookups for the same pair share one upstream call.
type DistanceResolver struct {
	provider ports.DistanceProvider
	sf       singleflight.Group
}

// NewDistanceResolver accepts a nil provider; Resolve then always returns nil.
func NewDistanceResolver(provider ports.DistanceProvider) *DistanceResolver {
	return &DistanceResolver{provider: provider}
}

// Resolve performs at most one upstream lookup and never retries. It returns
// nil when no provider is configured, the lookup fails, or ctx ends first.
// Cancelling ctx abandons only this caller's wait; other callers sharing the
// lookup still receive its result.
func (r *DistanceResolver) Resolve(ctx context.Context, origin, destination string) *domain.RouteDistance {
	if r == nil || r.provider == nil {
		return nil
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil
	}

	// The shared call outlives any single caller; the provider's own timeout bounds it.
	shared := context.WithoutCancel(ctx)
	ch := r.sf.DoChan(origin+"|"+destination, func() (any, error) {
		return r.provider.GetDistance(shared, origin, destination)
	})

	select {
	case <-ctx.Done():
		log.Printf("req_id=%s op=distance.resolve origin=%q destination=%q abandoned: %v", obs.RequestID(ctx), origin, destination, ctx.Err())
		return nil
	case res := <-ch:
		if res.Err != nil {
			log.Printf("req_id=%s op=distance.resolve origin=%q destination=%q fallback=heuristic err=%v", obs.RequestID(ctx), origin, destination, res.Err)
			return nil
		}

		dr, ok := res.Val.(ports.DistanceResult)
		if !ok {
			return nil
		}

		return &domain.RouteDistance{
			Miles:         int(math.Round(float64(dr.DistanceMeters) * metersToMiles)),
			DurationHours: float64(dr.DurationSeconds) / 3600,
		}
	}
}
