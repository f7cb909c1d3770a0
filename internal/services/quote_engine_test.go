package services

import (
	"drayage-quote-service/internal/domain"
	"fmt"
	"testing"
)

func TestQuotingEngineRemoteHubContainer(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))

	res := engine.Calculate(domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "GYR3",
		VehicleType:     domain.VehicleContainer40,
		HandlingMethod:  domain.HandlingPalletized,
	}, nil)

	if res.DistanceMiles != 360 {
		t.Fatalf("distance = %d, want hub value 360", res.DistanceMiles)
	}

	// 360mi / 50mph = 7.2h drive + 45min Low wait.
	assertMoney(t, "EstimatedHours", res.EstimatedHours, 7.95)
	assertMoney(t, "FuelSurcharge", res.FuelSurcharge, 360*1.55)
	assertMoney(t, "BaseCost", res.BaseCost, 7.95*52+150)
	assertMoney(t, "RemoteSurcharge", res.RemoteSurcharge, 180+360*0.15)
	assertMoney(t, "CongestionSurcharge", res.CongestionSurcharge, 0)
	assertMoney(t, "TotalCost", res.TotalCost, 1355.4)
	assertMoney(t, "RecommendedPrice", res.RecommendedPrice, 1355.4*1.30)

	for name, fee := range map[string]float64{
		"HandlingFee":   res.HandlingFee,
		"ChassisFee":    res.ChassisFee,
		"OverweightFee": res.OverweightFee,
		"HazmatFee":     res.HazmatFee,
		"PrePullFee":    res.PrePullFee,
	} {
		if fee != 0 {
			t.Errorf("%s = %v, want 0", name, fee)
		}
	}
}

func TestQuotingEngineFloorLoadedAddsFeeAndDockTime(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))

	params := domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "LGB8",
		VehicleType:     domain.VehicleDryVan53,
		HandlingMethod:  domain.HandlingPalletized,
	}
	pallet := engine.Calculate(params, nil)

	params.HandlingMethod = domain.HandlingFloorLoaded
	floor := engine.Calculate(params, nil)

	if pallet.HandlingFee != 0 || floor.HandlingFee != 250 {
		t.Fatalf("handling fees = %v / %v, want 0 / 250", pallet.HandlingFee, floor.HandlingFee)
	}
	assertMoney(t, "extra hours", floor.EstimatedHours-pallet.EstimatedHours, 3)

	// 0.75h dock wait + 3h unloading = 3.75h, 1.75h over the free allowance.
	assertMoney(t, "CongestionSurcharge", floor.CongestionSurcharge, 1.75*85)
	assertMoney(t, "TotalCost", floor.TotalCost, 757.75)
	assertMoney(t, "pallet TotalCost", pallet.TotalCost, 209)
}

func TestQuotingEngineOptionalFeesAreIndependent(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))

	base := domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "LGB8",
		VehicleType:     domain.VehicleDryVan53,
		HandlingMethod:  domain.HandlingFloorLoaded,
	}
	plain := engine.Calculate(base, nil)
	miles := float64(plain.DistanceMiles)

	tests := []struct {
		name  string
		apply func(p *domain.QuoteParams)
		field func(r domain.QuoteResult) float64
		want  float64
	}{
		{"overweight", func(p *domain.QuoteParams) { p.IsOverweight = true }, func(r domain.QuoteResult) float64 { return r.OverweightFee }, 150 + miles*0.5},
		{"hazmat", func(p *domain.QuoteParams) { p.IsHazmat = true }, func(r domain.QuoteResult) float64 { return r.HazmatFee }, 250},
		{"pre-pull", func(p *domain.QuoteParams) { p.IsPrePull = true }, func(r domain.QuoteResult) float64 { return r.PrePullFee }, 185},
		{"chassis", func(p *domain.QuoteParams) { p.ChassisDays = 3 }, func(r domain.QuoteResult) float64 { return r.ChassisFee }, 105},
	}

	all := base
	wantAll := plain.TotalCost
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.apply(&p)
			res := engine.Calculate(p, nil)

			assertMoney(t, "fee", tt.field(res), tt.want)
			assertMoney(t, "total delta", res.TotalCost-plain.TotalCost, tt.want)
			assertMoney(t, "BaseCost", res.BaseCost, plain.BaseCost)
			assertMoney(t, "CongestionSurcharge", res.CongestionSurcharge, plain.CongestionSurcharge)
		})
		tt.apply(&all)
		wantAll += tt.want
	}

	res := engine.Calculate(all, nil)
	assertMoney(t, "all fees TotalCost", res.TotalCost, wantAll)
}

func TestQuotingEngineLiveDistanceOverridesHeuristic(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))
	params := domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "LGB8",
		VehicleType:     domain.VehicleDryVan53,
		HandlingMethod:  domain.HandlingPalletized,
	}

	res, detail := engine.calculate(params, &domain.RouteDistance{Miles: 999, DurationHours: 10})
	if res.DistanceMiles != 999 {
		t.Fatalf("distance = %d, want 999", res.DistanceMiles)
	}
	if detail.source != DistanceLive {
		t.Fatalf("source = %s, want live", detail.source)
	}
	// 10h drive + 0.75h Low wait
	assertMoney(t, "EstimatedHours", res.EstimatedHours, 10.75)
}

func TestQuotingEngineIgnoresIncompleteLiveDistance(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))
	params := domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "LGB8",
		VehicleType:     domain.VehicleDryVan53,
		HandlingMethod:  domain.HandlingPalletized,
	}

	for _, rd := range []*domain.RouteDistance{nil, {Miles: 0, DurationHours: 3}, {Miles: 120, DurationHours: 0}} {
		res, detail := engine.calculate(params, rd)
		if res.DistanceMiles != 70 || detail.source != DistanceHeuristic {
			t.Errorf("realData=%v: distance=%d source=%s, want 70 heuristic", rd, res.DistanceMiles, detail.source)
		}
		assertMoney(t, "EstimatedHours", res.EstimatedHours, 70.0/50+0.75)
	}
}

func TestQuotingEngineUnknownCodesUseDefaults(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))

	tests := []struct {
		origin, dest string
	}{
		{"ZZZ", "LGB8"},
		{"LGB", "NOPE1"},
	}
	for _, tt := range tests {
		res, detail := engine.calculate(domain.QuoteParams{
			Origin:          tt.origin,
			DestinationCode: tt.dest,
			VehicleType:     domain.VehicleBoxTruck26,
			HandlingMethod:  domain.HandlingPalletized,
		}, nil)

		if res.DistanceMiles != 150 || detail.source != DistanceDefault {
			t.Errorf("%s->%s: distance=%d source=%s, want 150 default", tt.origin, tt.dest, res.DistanceMiles, detail.source)
		}
		if tt.dest == "NOPE1" {
			// 3h drive + 60min default wait, not remote.
			assertMoney(t, "EstimatedHours", res.EstimatedHours, 4)
			if res.RemoteSurcharge != 0 || detail.warehouse != nil {
				t.Errorf("unknown warehouse must not be remote or reported")
			}
		}
	}
}

func TestQuotingEngineCriticalWarehouseDetention(t *testing.T) {
	// Sampler pinned to 0: Critical wait = 300 minutes.
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{v: 0}))

	res := engine.Calculate(domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "ONT8",
		VehicleType:     domain.VehicleContainer20,
		HandlingMethod:  domain.HandlingPalletized,
	}, nil)

	assertMoney(t, "CongestionSurcharge", res.CongestionSurcharge, (5-2)*85)
	// LGB -> Moreno Valley hub lane is 75mi.
	assertMoney(t, "EstimatedHours", res.EstimatedHours, 75.0/50+5)
}

func TestDetentionSurchargeThreshold(t *testing.T) {
	if got := DetentionSurcharge(2.0); got != 0 {
		t.Fatalf("DetentionSurcharge(2.0) = %v, want 0", got)
	}
	if got := DetentionSurcharge(1.5); got != 0 {
		t.Fatalf("DetentionSurcharge(1.5) = %v, want 0", got)
	}
	got := DetentionSurcharge(2.01)
	if d := got - 0.01*85; d > 1e-9 || d < -1e-9 {
		t.Fatalf("DetentionSurcharge(2.01) = %v, want %v", got, 0.01*85)
	}
}

func TestQuotingEngineDeterministic(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{v: 17}))
	params := domain.QuoteParams{
		Origin:          "LGB",
		DestinationCode: "ONT8",
		VehicleType:     domain.VehicleContainer40,
		HandlingMethod:  domain.HandlingFloorLoaded,
		ChassisDays:     2,
		IsOverweight:    true,
	}
	rd := &domain.RouteDistance{Miles: 81, DurationHours: 1.7}

	first := engine.Calculate(params, rd)
	for i := 0; i < 10; i++ {
		if got := engine.Calculate(params, rd); got != first {
			t.Fatalf("call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestQuotingEngineAdditivityAndMargin(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{v: 11}))

	vehicles := []domain.VehicleType{domain.VehicleContainer20, domain.VehicleContainer40, domain.VehicleDryVan53, domain.VehicleBoxTruck26}
	handlings := []domain.HandlingMethod{domain.HandlingPalletized, domain.HandlingFloorLoaded}
	dests := []string{"GYR3", "LGB8", "ONT8", "FTW1", "NOPE1"}

	for _, v := range vehicles {
		for _, h := range handlings {
			for _, d := range dests {
				for flags := 0; flags < 8; flags++ {
					p := domain.QuoteParams{
						Origin:          "LGB",
						DestinationCode: d,
						VehicleType:     v,
						HandlingMethod:  h,
						ChassisDays:     flags,
						IsOverweight:    flags&1 != 0,
						IsHazmat:        flags&2 != 0,
						IsPrePull:       flags&4 != 0,
					}
					r := engine.Calculate(p, nil)

					sum := r.BaseCost + r.FuelSurcharge + r.CongestionSurcharge + r.HandlingFee +
						r.RemoteSurcharge + r.ChassisFee + r.OverweightFee + r.HazmatFee + r.PrePullFee
					name := fmt.Sprintf("%s/%s/%s/%d", v, h, d, flags)
					assertMoney(t, name+" TotalCost", r.TotalCost, sum)

					if r.RecommendedPrice != r.TotalCost*1.30 {
						t.Errorf("%s: RecommendedPrice = %v, want %v", name, r.RecommendedPrice, r.TotalCost*1.30)
					}
				}
			}
		}
	}
}

func TestQuotingEngineVehicleProfiles(t *testing.T) {
	engine := NewQuotingEngine(newTestCatalog(fixedSampler{}))
	rd := &domain.RouteDistance{Miles: 100, DurationHours: 2}

	tests := []struct {
		vehicle   domain.VehicleType
		fuel      float64
		base      float64 // driver cost for 2.75h + fixed surcharge
		surcharge bool
	}{
		{domain.VehicleContainer40, 155, 2.75*52 + 150, true},
		{domain.VehicleContainer20, 155, 2.75*52 + 150, true},
		{domain.VehicleDryVan53, 145, 2.75 * 50, false},
		{domain.VehicleBoxTruck26, 95, 2.75 * 42, false},
	}

	for _, tt := range tests {
		r := engine.Calculate(domain.QuoteParams{
			Origin:          "LGB",
			DestinationCode: "LGB8",
			VehicleType:     tt.vehicle,
			HandlingMethod:  domain.HandlingPalletized,
		}, rd)
		assertMoney(t, string(tt.vehicle)+" FuelSurcharge", r.FuelSurcharge, tt.fuel)
		assertMoney(t, string(tt.vehicle)+" BaseCost", r.BaseCost, tt.base)
	}
}
