package distance

import (
	"bytes"
	"context"
	"drayage-quote-service/internal/platform/obs"
	"drayage-quote-service/internal/ports"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type memCache struct {
	m      map[string]ports.DistanceResult
	putErr error
}

func newMemCache() *memCache {
	return &memCache{m: map[string]ports.DistanceResult{}}
}

func (c *memCache) Get(ctx context.Context, origin, destination string) (ports.DistanceResult, bool, error) {
	r, ok := c.m[origin+"|"+destination]
	return r, ok, nil
}

func (c *memCache) Put(ctx context.Context, origin, destination string, r ports.DistanceResult) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.m[origin+"|"+destination] = r
	return nil
}

func newTestProvider(t *testing.T, h http.HandlerFunc, cache ports.DistanceCache) (*GoogleDistanceProvider, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	p, err := NewGoogleDistanceProvider("test-key", cache, time.Second)
	if err != nil {
		t.Fatalf("NewGoogleDistanceProvider: %v", err)
	}
	p.baseURL = srv.URL
	return p, &hits
}

const okBody = `{
  "status": "OK",
  "rows": [{"elements": [{"status": "OK", "distance": {"value": 115873}, "duration": {"value": 5400}}]}]
}`

func TestNewGoogleDistanceProviderRequiresKey(t *testing.T) {
	for _, key := range []string{"", "   ", "YOUR_KEY_HERE"} {
		if _, err := NewGoogleDistanceProvider(key, nil, time.Second); !errors.Is(err, ErrNoCredential) {
			t.Errorf("key %q: err = %v, want ErrNoCredential", key, err)
		}
	}
}

func TestGoogleGetDistance(t *testing.T) {
	cache := newMemCache()
	p, hits := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/distancematrix/json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("origins") != "1300 Pier B St, Long Beach, CA" {
			t.Errorf("origins = %q", q.Get("origins"))
		}
		if q.Get("destinations") != "1568 N Linden Ave, Rialto, CA" {
			t.Errorf("destinations = %q", q.Get("destinations"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	}, cache)

	got, err := p.GetDistance(context.Background(), " 1300 Pier B St,  Long Beach, CA", "1568 N Linden Ave, Rialto,   CA ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := ports.DistanceResult{DistanceMeters: 115873, DurationSeconds: 5400}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// Second call is served from the cache.
	again, err := p.GetDistance(context.Background(), "1300 Pier B St, Long Beach, CA", "1568 N Linden Ave, Rialto, CA")
	if err != nil || again != want {
		t.Fatalf("cached = %+v, %v", again, err)
	}
	if hits.Load() != 1 {
		t.Fatalf("upstream hits = %d, want 1", hits.Load())
	}
}

func TestGoogleGetDistanceCacheWriteFailureIsNotFatal(t *testing.T) {
	cache := newMemCache()
	cache.putErr = errors.New("disk full")

	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okBody))
	}, cache)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	ctx := obs.WithRequestID(context.Background(), "req-42")
	if _, err := p.GetDistance(ctx, "a", "b"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if want := "req_id=req-42 op=distance.cache.Put err=disk full"; !strings.Contains(buf.String(), want) {
		t.Fatalf("log = %q, want it to contain %q", buf.String(), want)
	}
}

func TestGoogleGetDistanceFailures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantRoute bool
	}{
		{"http error", http.StatusInternalServerError, `oops`, false},
		{"request denied", http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key"}`, false},
		{"zero results", http.StatusOK, `{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`, true},
		{"not found", http.StatusOK, `{"status":"OK","rows":[{"elements":[{"status":"NOT_FOUND"}]}]}`, true},
		{"empty rows", http.StatusOK, `{"status":"OK","rows":[]}`, true},
		{"missing metrics", http.StatusOK, `{"status":"OK","rows":[{"elements":[{"status":"OK"}]}]}`, true},
		{"bad json", http.StatusOK, `{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMemCache()
			p, hits := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, cache)

			_, err := p.GetDistance(context.Background(), "a", "b")
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := errors.Is(err, ErrRouteNotFound); got != tt.wantRoute {
				t.Fatalf("errors.Is(ErrRouteNotFound) = %v, err = %v", got, err)
			}
			if hits.Load() != 1 {
				t.Fatalf("upstream hits = %d, want exactly 1 (no retries)", hits.Load())
			}
			if len(cache.m) != 0 {
				t.Fatalf("failures must not be cached")
			}
		})
	}
}

func TestGoogleGetDistanceHTTPStatusError(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}, nil)

	_, err := p.GetDistance(context.Background(), "a", "b")
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("err = %v, want httpStatusError 429", err)
	}
}

func TestGoogleGetDistanceRejectsBlankInput(t *testing.T) {
	p, hits := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {}, nil)

	if _, err := p.GetDistance(context.Background(), " ", "b"); err == nil {
		t.Fatalf("expected error for blank origin")
	}
	if _, err := p.GetDistance(context.Background(), "a", ""); err == nil {
		t.Fatalf("expected error for blank destination")
	}
	if hits.Load() != 0 {
		t.Fatalf("blank input must not reach upstream")
	}
}
