package domain

import "fmt"

// Coarse US shipping region shared by ports and warehouses.
type Region string

const (
	RegionWest  Region = "West"
	RegionEast  Region = "East"
	RegionSouth Region = "South"
)

// Immutable reference record for a container port. Ports are loaded once
// at startup and identified by Code.
type Port struct {
	Code    string
	Name    string
	Address string
	City    string
	State   string
	Region  Region
}

// Address string used for live distance lookups.
func (p Port) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s", p.Address, p.City, p.State)
}

// A destination warehouse. The base fields come from reference data;
// CongestionLevel and AvgWaitTimeMins are derived on every read by Enrich
// and are never persisted.
type Warehouse struct {
	Code     string
	Address  string
	City     string
	State    string
	Zip      string
	Region   Region
	IsRemote bool

	CongestionLevel CongestionLevel
	AvgWaitTimeMins int
}

// Address string used for live distance lookups.
func (w Warehouse) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s", w.Address, w.City, w.State)
}
