package services

import (
	"drayage-quote-service/internal/domain"
	"strconv"
)

const (
	localDrayMiles        = 70
	crossCaliforniaMiles  = 380
	sameStateMiles        = 60
	californiaDesertMiles = 320
	eastCorridorMiles     = 180
	longHaulMiles         = 1000

	// Used by the engine when the port or warehouse code is not in the reference data.
	unresolvedLegMiles = 150

	// Assumed average truck speed for heuristic drive time.
	heuristicSpeedMPH = 50
)

type hubKey struct {
	port string
	city string
}

// Known lane distances (miles) from a port to high-volume warehouse cities.
var hubDistances = map[hubKey]int{
	{"LGB", "Moreno Valley"}: 75, {"LGB", "Fontana"}: 65, {"LGB", "Rialto"}: 70,
	{"LGB", "San Bernardino"}: 75, {"LGB", "Redlands"}: 80, {"LGB", "Ontario"}: 55,
	{"LGB", "Chino"}: 45, {"LGB", "Jurupa Valley"}: 55, {"LGB", "Eastvale"}: 50,
	{"LGB", "Perris"}: 85, {"LGB", "Tracy"}: 360, {"LGB", "Stockton"}: 370,
	{"LGB", "Phoenix"}: 370, {"LGB", "Goodyear"}: 360, {"LGB", "Las Vegas"}: 280,
	{"LGB", "North Las Vegas"}: 285,

	{"LAX", "Moreno Valley"}: 80, {"LAX", "Fontana"}: 70, {"LAX", "Rialto"}: 75,
	{"LAX", "San Bernardino"}: 80, {"LAX", "Redlands"}: 85, {"LAX", "Ontario"}: 60,
	{"LAX", "Chino"}: 50, {"LAX", "Jurupa Valley"}: 60, {"LAX", "Eastvale"}: 55,
	{"LAX", "Perris"}: 90, {"LAX", "Tracy"}: 350, {"LAX", "Stockton"}: 360,
	{"LAX", "Phoenix"}: 380, {"LAX", "Goodyear"}: 370, {"LAX", "Las Vegas"}: 290,
	{"LAX", "North Las Vegas"}: 295,

	{"OAK", "Tracy"}: 55, {"OAK", "Stockton"}: 70, {"OAK", "Lathrop"}: 60,
	{"OAK", "Patterson"}: 85, {"OAK", "Sacramento"}: 90, {"OAK", "Fresno"}: 160,

	{"SAV", "Pooler"}: 15, {"SAV", "Port Wentworth"}: 10, {"SAV", "Savannah"}: 5,
	{"SAV", "Charlotte"}: 250, {"SAV", "Atlanta"}: 250, {"SAV", "Macon"}: 170,

	{"NYNJ", "Elizabeth"}: 5, {"NYNJ", "Newark"}: 8, {"NYNJ", "Edison"}: 25,
	{"NYNJ", "Cranbury"}: 45, {"NYNJ", "Robbinsville"}: 55, {"NYNJ", "Burlington"}: 65,
	{"NYNJ", "Allentown"}: 90,

	{"HOU", "Houston"}: 15, {"HOU", "Pasadena"}: 10, {"HOU", "Baytown"}: 25,
	{"HOU", "Dallas"}: 240, {"HOU", "Fort Worth"}: 250, {"HOU", "Irving"}: 245,
}

var southernCaliforniaPorts = map[string]struct{}{
	"LGB": {},
	"LAX": {},
}

// EstimateHeuristicDistance returns a road-mile estimate for a port->warehouse
// leg without any network access. Tiers are applied in order and the first
// match wins:
//
//  1. exact hub lane (port code, warehouse city)
//  2. same state, with Southern vs. Northern California split on ZIP prefix
//  3. regional (California port to NV/AZ, East to East)
//  4. long haul
func EstimateHeuristicDistance(port domain.Port, wh domain.Warehouse) int {
	if miles, ok := hubDistances[hubKey{port: port.Code, city: wh.City}]; ok {
		return miles
	}

	if port.State == wh.State {
		if port.State == "CA" {
			_, portSoCal := southernCaliforniaPorts[port.Code]
			if portSoCal == isSouthernCaliforniaZip(wh.Zip) {
				return localDrayMiles
			}
			return crossCaliforniaMiles
		}
		return sameStateMiles
	}

	if port.State == "CA" && (wh.State == "NV" || wh.State == "AZ") {
		return californiaDesertMiles
	}
	if port.Region == domain.RegionEast && wh.Region == domain.RegionEast {
		return eastCorridorMiles
	}

	return longHaulMiles
}

// ZIP prefixes 90-93 cover Los Angeles through the Inland Empire and Central Coast.
func isSouthernCaliforniaZip(zip string) bool {
	if len(zip) < 2 {
		return false
	}
	prefix, err := strconv.Atoi(zip[:2])
	if err != nil {
		return false
	}
	return prefix >= 90 && prefix <= 93
}
