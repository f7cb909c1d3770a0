package handlers

import (
	"drayage-quote-service/internal/api/dto"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/ports"
	"drayage-quote-service/internal/services"
	"log"
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

type DispatchHandler struct {
	Repo    ports.DispatchRepository
	Catalog *services.Catalog
	// Now defaults to time.Now.
	Now func() time.Time
}

// Board returns the read-only dispatch board.
func (h *DispatchHandler) Board(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	board, err := services.BuildDispatchBoard(r.Context(), h.Repo, h.Catalog.RemoteWarehouses(), now)
	if err != nil {
		log.Printf("build dispatch board failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	res := dto.DispatchBoardResponse{
		GeneratedAt:  board.GeneratedAt,
		CriticalJobs: board.CriticalJobs,
		IdleDrivers:  board.IdleDrivers,
		Jobs:         make([]dto.JobResponse, 0, len(board.Jobs)),
		Drivers:      make([]dto.DriverResponse, 0, len(board.Drivers)),
	}

	for _, bj := range board.Jobs {
		j := bj.Job
		res.Jobs = append(res.Jobs, dto.JobResponse{
			ID:                 j.ID,
			ContainerNo:        j.ContainerNo,
			MasterBL:           j.MasterBL,
			CustomerRef:        j.CustomerRef,
			Size:               j.Size,
			Type:               j.Type,
			Origin:             j.Origin,
			Destination:        j.Destination,
			ETA:                j.ETA.Format(dateLayout),
			LastFreeDay:        j.LastFreeDay.Format(dateLayout),
			DaysUntilLFD:       domain.DaysUntil(j.LastFreeDay, now),
			Status:             string(j.Status),
			Urgency:            string(bj.Urgency),
			IsRemote:           bj.IsRemote,
			AssignedDriverID:   j.AssignedDriverID,
			PotentialDemurrage: j.PotentialDemurrage,
		})
	}

	for _, d := range board.Drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			ID:           d.ID,
			Name:         d.Name,
			Phone:        d.Phone,
			LicensePlate: d.LicensePlate,
			Status:       string(d.Status),
			CurrentJobID: d.CurrentJobID,
			Location:     d.Location,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
