package domain

import (
	"math/rand/v2"
	"sync"
)

type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "Low"
	CongestionMedium   CongestionLevel = "Medium"
	CongestionHigh     CongestionLevel = "High"
	CongestionCritical CongestionLevel = "Critical"
)

// WaitSampler supplies wait-time jitter. IntN must return a value in [0, n).
type WaitSampler interface {
	IntN(n int) int
}

// Warehouses known to run multi-hour dock queues.
var criticalWarehouses = map[string]struct{}{
	"ONT8": {},
	"LAX9": {},
	"SBD1": {},
}

// waitBand is the half-open range [base, base+spread) of average wait minutes for a level.
type waitBand struct {
	base   int
	spread int
}

var waitBands = map[CongestionLevel]waitBand{
	CongestionCritical: {base: 300, spread: 120},
	CongestionHigh:     {base: 150, spread: 90},
	CongestionMedium:   {base: 90, spread: 30},
	CongestionLow:      {base: 45},
}

// CongestionLevelFor derives the congestion tier from the warehouse code alone.
// The result is deterministic; only the wait time within the tier is random.
func CongestionLevelFor(code string) CongestionLevel {
	if _, ok := criticalWarehouses[code]; ok {
		return CongestionCritical
	}
	if len(code) > 2 && code[2]%4 == 0 {
		return CongestionHigh
	}
	if len(code) > 1 && code[1]%2 == 0 {
		return CongestionMedium
	}
	return CongestionLow
}

// WaitRange returns the inclusive lower and exclusive upper bound of wait minutes for level.
// Low has a fixed wait, reported as [45, 46).
func WaitRange(level CongestionLevel) (lo, hi int) {
	b, ok := waitBands[level]
	if !ok {
		b = waitBands[CongestionLow]
	}
	if b.spread == 0 {
		return b.base, b.base + 1
	}
	return b.base, b.base + b.spread
}

// SampleWaitMins draws an average wait time inside the band of level.
func SampleWaitMins(level CongestionLevel, s WaitSampler) int {
	b, ok := waitBands[level]
	if !ok {
		b = waitBands[CongestionLow]
	}
	if b.spread == 0 || s == nil {
		return b.base
	}
	return b.base + s.IntN(b.spread)
}

// Enrich returns a copy of w with fresh congestion fields. It is called on
// every read; results are not cached.
func (w Warehouse) Enrich(s WaitSampler) Warehouse {
	level := CongestionLevelFor(w.Code)
	w.CongestionLevel = level
	w.AvgWaitTimeMins = SampleWaitMins(level, s)
	return w
}

func EnrichAll(warehouses []Warehouse, s WaitSampler) []Warehouse {
	out := make([]Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, w.Enrich(s))
	}
	return out
}

// LockedSampler is a WaitSampler safe for concurrent use by HTTP handlers.
type LockedSampler struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSampler returns a reproducible sampler.
func NewSeededSampler(seed uint64) *LockedSampler {
	return &LockedSampler{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSampler returns a sampler seeded from the runtime's random source.
func NewRandomSampler() *LockedSampler {
	return NewSeededSampler(rand.Uint64())
}

func (s *LockedSampler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
