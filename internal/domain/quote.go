package domain

import (
	"errors"
	"fmt"
	"strings"
)

type VehicleType string

const (
	VehicleContainer20 VehicleType = "CONTAINER_20"
	VehicleContainer40 VehicleType = "CONTAINER_40"
	VehicleDryVan53    VehicleType = "DRY_VAN_53"
	VehicleBoxTruck26  VehicleType = "BOX_TRUCK_26"
)

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleContainer20, VehicleContainer40, VehicleDryVan53, VehicleBoxTruck26:
		return true
	}
	return false
}

type HandlingMethod string

const (
	HandlingPalletized  HandlingMethod = "PALLETIZED"
	HandlingFloorLoaded HandlingMethod = "FLOOR_LOADED"
)

func (h HandlingMethod) Valid() bool {
	return h == HandlingPalletized || h == HandlingFloorLoaded
}

var (
	ErrMissingOrigin         = errors.New("origin port code is required")
	ErrMissingDestination    = errors.New("destination warehouse code is required")
	ErrUnknownVehicleType    = errors.New("unknown vehicle type")
	ErrUnknownHandlingMethod = errors.New("unknown handling method")
	ErrNegativeChassisDays   = errors.New("chassis days must not be negative")
)

// Caller supplied input for a single quote. Origin references Port.Code and
// DestinationCode references Warehouse.Code; neither is enforced, unknown
// codes degrade to default distances.
type QuoteParams struct {
	Origin          string
	DestinationCode string
	VehicleType     VehicleType
	HandlingMethod  HandlingMethod
	ChassisDays     int
	IsOverweight    bool
	IsHazmat        bool
	IsPrePull       bool
}

// Validate rejects out-of-domain input at the API boundary. The quoting
// engine itself never validates.
func (p QuoteParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Origin) == "" {
		errs = append(errs, ErrMissingOrigin)
	}
	if strings.TrimSpace(p.DestinationCode) == "" {
		errs = append(errs, ErrMissingDestination)
	}
	if !p.VehicleType.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownVehicleType, p.VehicleType))
	}
	if !p.HandlingMethod.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownHandlingMethod, p.HandlingMethod))
	}
	if p.ChassisDays < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeChassisDays, p.ChassisDays))
	}
	return errors.Join(errs...)
}

// Distance and drive time for a port->warehouse leg as reported by a live lookup.
type RouteDistance struct {
	Miles         int
	DurationHours float64
}

// Itemized cost breakdown. BaseCost excludes fuel, which is reported as
// FuelSurcharge; TotalCost is the sum of every line item.
type QuoteResult struct {
	BaseCost            float64
	FuelSurcharge       float64
	CongestionSurcharge float64
	HandlingFee         float64
	ChassisFee          float64
	OverweightFee       float64
	HazmatFee           float64
	PrePullFee          float64
	RemoteSurcharge     float64
	TotalCost           float64
	RecommendedPrice    float64
	DistanceMiles       int
	EstimatedHours      float64
}
