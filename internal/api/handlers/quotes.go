package handlers

import (
	"context"
	"drayage-quote-service/internal/api/dto"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

// Create prices a single port->warehouse move.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid_json", "body must contain only one JSON object")
		return
	}

	params := toQuoteParams(req)

	q, err := h.Service.Quote(r.Context(), params)
	switch {
	case errors.Is(err, services.ErrInvalidParams):
		writeError(w, r, http.StatusBadRequest, "invalid_request", validationMessage(err))
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client is gone; nothing useful to write.
		log.Printf("quote abandoned: %v", err)
		return
	case err != nil:
		log.Printf("quote failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toQuoteResponse(q))
}

// CreateBatch prices up to services.MaxBatchQuotes moves. Invalid entries are
// reported in place; they do not fail the request.
func (h *QuoteHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchQuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid_json", "body must contain only one JSON object")
		return
	}

	if len(req.Quotes) == 0 {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "quotes must not be empty")
		return
	}
	if len(req.Quotes) > services.MaxBatchQuotes {
		writeError(w, r, http.StatusBadRequest, "invalid_request", fmt.Sprintf("quotes must not exceed %d entries", services.MaxBatchQuotes))
		return
	}

	params := make([]domain.QuoteParams, 0, len(req.Quotes))
	for _, q := range req.Quotes {
		params = append(params, toQuoteParams(q))
	}

	items, err := h.Service.QuoteMany(r.Context(), params)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("quote batch abandoned: %v", err)
		return
	case err != nil:
		log.Printf("quote batch failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	res := dto.BatchQuoteResponse{Results: make([]dto.BatchQuoteItem, 0, len(items))}
	for _, item := range items {
		if item.Err != nil {
			res.Results = append(res.Results, dto.BatchQuoteItem{
				Error: &dto.ErrorDetail{Code: "invalid_request", Message: validationMessage(item.Err)},
			})
			continue
		}
		qr := toQuoteResponse(item.Quote)
		res.Results = append(res.Results, dto.BatchQuoteItem{Quote: &qr})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toQuoteParams(req dto.QuoteRequest) domain.QuoteParams {
	return domain.QuoteParams{
		Origin:          strings.TrimSpace(req.Origin),
		DestinationCode: strings.TrimSpace(req.DestinationCode),
		VehicleType:     domain.VehicleType(req.VehicleType),
		HandlingMethod:  domain.HandlingMethod(req.HandlingMethod),
		ChassisDays:     req.ChassisDays,
		IsOverweight:    req.IsOverweight,
		IsHazmat:        req.IsHazmat,
		IsPrePull:       req.IsPrePull,
	}
}

// errors.Join separates causes with newlines; flatten for a single-line message.
func validationMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func toQuoteResponse(q services.Quote) dto.QuoteResponse {
	res := q.Result
	out := dto.QuoteResponse{
		BaseCost:            res.BaseCost,
		FuelSurcharge:       res.FuelSurcharge,
		CongestionSurcharge: res.CongestionSurcharge,
		HandlingFee:         res.HandlingFee,
		ChassisFee:          res.ChassisFee,
		OverweightFee:       res.OverweightFee,
		HazmatFee:           res.HazmatFee,
		PrePullFee:          res.PrePullFee,
		RemoteSurcharge:     res.RemoteSurcharge,
		TotalCost:           res.TotalCost,
		RecommendedPrice:    res.RecommendedPrice,
		DistanceMiles:       res.DistanceMiles,
		EstimatedHours:      res.EstimatedHours,
		DistanceSource:      string(q.DistanceSource),
		Display: dto.QuoteDisplay{
			BaseCost:            dto.Money(res.BaseCost),
			FuelSurcharge:       dto.Money(res.FuelSurcharge),
			CongestionSurcharge: dto.Money(res.CongestionSurcharge),
			HandlingFee:         dto.Money(res.HandlingFee),
			ChassisFee:          dto.Money(res.ChassisFee),
			OverweightFee:       dto.Money(res.OverweightFee),
			HazmatFee:           dto.Money(res.HazmatFee),
			PrePullFee:          dto.Money(res.PrePullFee),
			RemoteSurcharge:     dto.Money(res.RemoteSurcharge),
			TotalCost:           dto.Money(res.TotalCost),
			RecommendedPrice:    dto.Money(res.RecommendedPrice),
			EstimatedHours:      dto.Hours(res.EstimatedHours),
		},
	}

	if q.Warehouse != nil {
		wr := toWarehouseResponse(*q.Warehouse)
		out.Warehouse = &wr
	}

	return out
}
