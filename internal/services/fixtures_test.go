package services

import (
	"drayage-quote-service/internal/domain"
	"math"
	"testing"
)

// fixedSampler returns v (mod n) for every draw.
type fixedSampler struct{ v int }

func (s fixedSampler) IntN(n int) int { return s.v % n }

var testPorts = []domain.Port{
	{Code: "LGB", Name: "Long Beach", Address: "1300 Pier B St", City: "Long Beach", State: "CA", Region: domain.RegionWest},
	{Code: "OAK", Name: "Oakland", Address: "530 Water St", City: "Oakland", State: "CA", Region: domain.RegionWest},
	{Code: "HOU", Name: "Houston", Address: "111 East Loop North", City: "Houston", State: "TX", Region: domain.RegionSouth},
}

var testWarehouses = []domain.Warehouse{
	{Code: "GYR3", Address: "16920 W Commerce Dr", City: "Goodyear", State: "AZ", Zip: "85338", Region: domain.RegionWest, IsRemote: true},
	{Code: "LGB8", Address: "1568 N Linden Ave", City: "Rialto", State: "CA", Zip: "92376", Region: domain.RegionWest},
	{Code: "ONT8", Address: "24208 San Michele Rd", City: "Moreno Valley", State: "CA", Zip: "92551", Region: domain.RegionWest},
	{Code: "FTW1", Address: "33333 LBJ Fwy", City: "Dallas", State: "TX", Zip: "75241", Region: domain.RegionSouth},
}

func newTestCatalog(sampler domain.WaitSampler) *Catalog {
	return NewCatalog(testPorts, testWarehouses, sampler)
}

func assertMoney(t *testing.T, field string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %.10f, want %.10f", field, got, want)
	}
}
