package handlers

import (
	"drayage-quote-service/internal/api/dto"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/services"
	"net/http"
	"strings"
)

type ReferenceHandler struct {
	Catalog *services.Catalog
}

func (h *ReferenceHandler) Ports(w http.ResponseWriter, r *http.Request) {
	ports := h.Catalog.Ports()

	res := dto.ListPortsResponse{Ports: make([]dto.PortResponse, 0, len(ports))}
	for _, p := range ports {
		res.Ports = append(res.Ports, dto.PortResponse{
			Code:    p.Code,
			Name:    p.Name,
			Address: p.Address,
			City:    p.City,
			State:   p.State,
			Region:  string(p.Region),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Warehouses lists enriched warehouses, filtered by ?q= on code or city.
func (h *ReferenceHandler) Warehouses(w http.ResponseWriter, r *http.Request) {
	whs := h.Catalog.SearchWarehouses(r.URL.Query().Get("q"))
	writeJSON(w, r, http.StatusOK, dto.ListWarehousesResponse{Warehouses: toWarehouseResponses(whs)})
}

// Congestion returns the live congestion watch; ?level=critical keeps only Critical sites.
func (h *ReferenceHandler) Congestion(w http.ResponseWriter, r *http.Request) {
	var criticalOnly bool
	switch level := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("level"))); level {
	case "", "all":
	case "critical":
		criticalOnly = true
	default:
		writeError(w, r, http.StatusBadRequest, "invalid_request", "level must be one of: all, critical")
		return
	}

	whs := h.Catalog.CongestionWatch(criticalOnly)

	res := dto.CongestionResponse{Warehouses: toWarehouseResponses(whs)}
	for _, wh := range whs {
		if wh.CongestionLevel == domain.CongestionCritical {
			res.CriticalCount++
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toWarehouseResponses(whs []domain.Warehouse) []dto.WarehouseResponse {
	out := make([]dto.WarehouseResponse, 0, len(whs))
	for _, wh := range whs {
		out = append(out, toWarehouseResponse(wh))
	}
	return out
}

func toWarehouseResponse(wh domain.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		Code:            wh.Code,
		Address:         wh.Address,
		City:            wh.City,
		State:           wh.State,
		Zip:             wh.Zip,
		Region:          string(wh.Region),
		IsRemote:        wh.IsRemote,
		CongestionLevel: string(wh.CongestionLevel),
		AvgWaitTimeMins: wh.AvgWaitTimeMins,
	}
}
