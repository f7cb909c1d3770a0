package services

import "drayage-quote-service/internal/domain"

const (
	// Minutes of dock wait assumed when the destination warehouse is unknown.
	defaultWaitMins = 60

	freeWaitHours        = 2.0
	detentionRatePerHour = 85.0

	chassisDailyRate = 35.0

	overweightBaseFee = 150.0
	overweightPerMile = 0.50

	hazmatFlatFee = 250.0

	// Pull charge plus one day of storage/chassis.
	prePullFlatFee = 150.0 + 35.0

	remoteBaseFee = 180.0
	remotePerMile = 0.15

	marginMultiplier = 1.30
)

type vehicleProfile struct {
	fuelPerMile      float64
	driverHourlyRate float64
	// Fixed bridge/chassis/gate charge.
	surcharge float64
}

var vehicleProfiles = map[domain.VehicleType]vehicleProfile{
	domain.VehicleContainer40: {fuelPerMile: 1.55, driverHourlyRate: 52, surcharge: 150},
	domain.VehicleContainer20: {fuelPerMile: 1.55, driverHourlyRate: 52, surcharge: 150},
	domain.VehicleDryVan53:    {fuelPerMile: 1.45, driverHourlyRate: 50},
	domain.VehicleBoxTruck26:  {fuelPerMile: 0.95, driverHourlyRate: 42},
}

// Applied only when the engine is called with an unvalidated vehicle type.
var fallbackVehicleProfile = vehicleProfile{fuelPerMile: 1.35, driverHourlyRate: 48}

type handlingProfile struct {
	fee            float64
	extraWaitHours float64
}

var handlingProfiles = map[domain.HandlingMethod]handlingProfile{
	domain.HandlingFloorLoaded: {fee: 250, extraWaitHours: 3},
	domain.HandlingPalletized:  {},
}

// Where the quoted distance came from.
type DistanceSource string

const (
	DistanceLive      DistanceSource = "live"
	DistanceHeuristic DistanceSource = "heuristic"
	DistanceDefault   DistanceSource = "default"
)

// QuotingEngine prices a port->warehouse drayage leg. It performs no I/O and
// no input validation; the only non-determinism is the congestion jitter
// drawn from the catalog's WaitSampler.
type QuotingEngine struct {
	catalog *Catalog
}

func NewQuotingEngine(catalog *Catalog) *QuotingEngine {
	return &QuotingEngine{catalog: catalog}
}

// Calculate returns the itemized quote for params. realData is used only when
// both its miles and duration are non-zero; otherwise the heuristic estimator
// supplies the distance.
func (e *QuotingEngine) Calculate(params domain.QuoteParams, realData *domain.RouteDistance) domain.QuoteResult {
	res, _ := e.calculate(params, realData)
	return res
}

type quoteDetail struct {
	source    DistanceSource
	warehouse *domain.Warehouse
}

func (e *QuotingEngine) calculate(params domain.QuoteParams, realData *domain.RouteDistance) (domain.QuoteResult, quoteDetail) {
	var detail quoteDetail

	var miles int
	var driveHours float64
	if hasLiveDistance(realData) {
		miles = realData.Miles
		driveHours = realData.DurationHours
		detail.source = DistanceLive
	} else {
		port, hasPort := e.catalog.Port(params.Origin)
		wh, hasWh := e.catalog.Warehouse(params.DestinationCode)
		if hasPort && hasWh {
			miles = EstimateHeuristicDistance(port, wh)
			detail.source = DistanceHeuristic
		} else {
			miles = unresolvedLegMiles
			detail.source = DistanceDefault
		}
		driveHours = float64(miles) / heuristicSpeedMPH
	}

	vehicle, ok := vehicleProfiles[params.VehicleType]
	if !ok {
		vehicle = fallbackVehicleProfile
	}
	handling := handlingProfiles[params.HandlingMethod]

	waitMins := defaultWaitMins
	isRemote := false
	if wh, ok := e.catalog.EnrichedWarehouse(params.DestinationCode); ok {
		detail.warehouse = &wh
		if wh.AvgWaitTimeMins != 0 {
			waitMins = wh.AvgWaitTimeMins
		}
		isRemote = wh.IsRemote
	}

	baseWaitHours := float64(waitMins) / 60
	totalWaitHours := baseWaitHours + handling.extraWaitHours
	estimatedTotalHours := driveHours + totalWaitHours

	distance := float64(miles)
	fuelCost := distance * vehicle.fuelPerMile
	driverCost := estimatedTotalHours * vehicle.driverHourlyRate
	baseCost := fuelCost + driverCost + vehicle.surcharge

	congestionSurcharge := DetentionSurcharge(totalWaitHours)

	chassisFee := float64(params.ChassisDays) * chassisDailyRate

	var overweightFee float64
	if params.IsOverweight {
		overweightFee = overweightBaseFee + distance*overweightPerMile
	}

	var hazmatFee float64
	if params.IsHazmat {
		hazmatFee = hazmatFlatFee
	}

	var prePullFee float64
	if params.IsPrePull {
		prePullFee = prePullFlatFee
	}

	var remoteSurcharge float64
	if isRemote {
		remoteSurcharge = remoteBaseFee + distance*remotePerMile
	}

	totalCost := baseCost + congestionSurcharge + handling.fee + remoteSurcharge + chassisFee + overweightFee + hazmatFee + prePullFee

	return domain.QuoteResult{
		BaseCost:            baseCost - fuelCost,
		FuelSurcharge:       fuelCost,
		CongestionSurcharge: congestionSurcharge,
		HandlingFee:         handling.fee,
		ChassisFee:          chassisFee,
		OverweightFee:       overweightFee,
		HazmatFee:           hazmatFee,
		PrePullFee:          prePullFee,
		RemoteSurcharge:     remoteSurcharge,
		TotalCost:           totalCost,
		RecommendedPrice:    totalCost * marginMultiplier,
		DistanceMiles:       miles,
		EstimatedHours:      estimatedTotalHours,
	}, detail
}

// DetentionSurcharge bills dock and handling wait beyond the free allowance.
func DetentionSurcharge(waitHours float64) float64 {
	if waitHours > freeWaitHours {
		return (waitHours - freeWaitHours) * detentionRatePerHour
	}
	return 0
}

func hasLiveDistance(rd *domain.RouteDistance) bool {
	return rd != nil && rd.Miles != 0 && rd.DurationHours != 0
}
