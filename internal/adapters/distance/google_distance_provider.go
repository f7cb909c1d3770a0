package distance

import (
	"context"
	"drayage-quote-service/internal/platform/obs"
	"drayage-quote-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Key value shipped in sample configuration; treated the same as no key.
const placeholderAPIKey = "YOUR_KEY_HERE"

const defaultBaseURL = "https://maps.googleapis.com"

var (
	ErrNoCredential  = errors.New("google maps api key is not configured")
	ErrRouteNotFound = errors.New("no drivable route between origin and destination")
)

// GoogleDistanceProvider implements DistanceProvider using the Google
// Distance Matrix API, one origin and one destination per request.
//
// Resolved pairs are written to an optional persistent cache keyed on the
// whitespace-normalized addresses. The provider is safe for concurrent use.
type GoogleDistanceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.DistanceCache
}

// NewGoogleDistanceProvider returns ErrNoCredential when apiKey is empty or
// the sample placeholder. cache may be nil.
func NewGoogleDistanceProvider(
	apiKey string,
	cache ports.DistanceCache,
	timeout time.Duration,
) (*GoogleDistanceProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" || apiKey == placeholderAPIKey {
		return nil, ErrNoCredential
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}

	return &GoogleDistanceProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		cache:   cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleDistanceProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (g *GoogleDistanceProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.google.GetDistance")(&err)

	normOrigin := g.normalize(origin)
	if normOrigin == "" {
		return ports.DistanceResult{}, errors.New("get google distance: origin must be non-empty")
	}

	normDestination := g.normalize(destination)
	if normDestination == "" {
		return ports.DistanceResult{}, errors.New("get google distance: destination must be non-empty")
	}

	if g.cache != nil {
		hit, ok, err := g.cache.Get(ctx, normOrigin, normDestination)
		if err != nil {
			// A broken cache must not cost a live lookup.
			log.Printf("req_id=%s op=distance.cache.Get err=%v", obs.RequestID(ctx), err)
		} else if ok {
			return hit, nil
		}
	}

	result, err := g.fetchElement(ctx, normOrigin, normDestination)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf(
			"get google distance %q -> %q: %w",
			normOrigin, normDestination, err,
		)
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, normOrigin, normDestination, result); err != nil {
			log.Printf("req_id=%s op=distance.cache.Put err=%v", obs.RequestID(ctx), err)
		}
	}

	return result, nil
}
