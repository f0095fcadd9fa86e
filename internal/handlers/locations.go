package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
)

// VisitLister defines the interface that the tracking service must implement.
type VisitLister interface {
	ListRecentVisits(ctx context.Context) ([]models.Visit, error)
}

// LocationsResponse lists recent tracked visits
// swagger:model LocationsResponse
type LocationsResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []models.Visit `json:"data"`
}

// NewLocationsHandler returns an HTTP handler listing recent visits.
// @Summary List recent visits
// @Description Returns the most recent tracked visits, newest first.
// @Tags tracking
// @Produce json
// @Success 200 {object} handlers.LocationsResponse "Recent visits"
// @Router /api/locations [get]
func NewLocationsHandler(svc VisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visits, err := svc.ListRecentVisits(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list visits", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Failed to fetch locations"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LocationsResponse{
			Success: true,
			Count:   len(visits),
			Data:    visits,
		})
	}
}
