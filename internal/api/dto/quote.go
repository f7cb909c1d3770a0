package dto

import "github.com/shopspring/decimal"

type QuoteRequest struct {
	Origin          string `json:"origin"`
	DestinationCode string `json:"destination_code"`
	VehicleType     string `json:"vehicle_type"`
	HandlingMethod  string `json:"handling_method"`
	ChassisDays     int    `json:"chassis_days"`
	IsOverweight    bool   `json:"is_overweight"`
	IsHazmat        bool   `json:"is_hazmat"`
	IsPrePull       bool   `json:"is_pre_pull"`
}

// Raw float amounts are kept for clients that compute with them; Display
// carries the same amounts rounded to cents for presentation.
type QuoteResponse struct {
	BaseCost            float64 `json:"base_cost"`
	FuelSurcharge       float64 `json:"fuel_surcharge"`
	CongestionSurcharge float64 `json:"congestion_surcharge"`
	HandlingFee         float64 `json:"handling_fee"`
	ChassisFee          float64 `json:"chassis_fee"`
	OverweightFee       float64 `json:"overweight_fee"`
	HazmatFee           float64 `json:"hazmat_fee"`
	PrePullFee          float64 `json:"pre_pull_fee"`
	RemoteSurcharge     float64 `json:"remote_surcharge"`
	TotalCost           float64 `json:"total_cost"`
	RecommendedPrice    float64 `json:"recommended_price"`
	DistanceMiles       int     `json:"distance_miles"`
	EstimatedHours      float64 `json:"estimated_hours"`

	DistanceSource string             `json:"distance_source"`
	Display        QuoteDisplay       `json:"display"`
	Warehouse      *WarehouseResponse `json:"warehouse,omitempty"`
}

type QuoteDisplay struct {
	BaseCost            string `json:"base_cost"`
	FuelSurcharge       string `json:"fuel_surcharge"`
	CongestionSurcharge string `json:"congestion_surcharge"`
	HandlingFee         string `json:"handling_fee"`
	ChassisFee          string `json:"chassis_fee"`
	OverweightFee       string `json:"overweight_fee"`
	HazmatFee           string `json:"hazmat_fee"`
	PrePullFee          string `json:"pre_pull_fee"`
	RemoteSurcharge     string `json:"remote_surcharge"`
	TotalCost           string `json:"total_cost"`
	RecommendedPrice    string `json:"recommended_price"`
	EstimatedHours      string `json:"estimated_hours"`
}

// Money formats an amount with exactly two decimal places.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Hours formats a duration in hours with one decimal place.
func Hours(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}

type BatchQuoteRequest struct {
	Quotes []QuoteRequest `json:"quotes"`
}

// Exactly one of Quote and Error is set.
type BatchQuoteItem struct {
	Quote *QuoteResponse `json:"quote,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type BatchQuoteResponse struct {
	Results []BatchQuoteItem `json:"results"`
}
