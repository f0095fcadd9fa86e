package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
)

// VisitTracker defines the interface that the tracking service must implement.
type VisitTracker interface {
	TrackVisit(ctx context.Context, ip, userAgent string) (*models.Visit, error)
}

// TrackIPResponse carries the resolved location summary
// swagger:model TrackIPResponse
type TrackIPResponse struct {
	Success bool             `json:"success"`
	Data    TrackIPVisitData `json:"data"`
}

// TrackIPVisitData is the location summary shown to the visitor
// swagger:model TrackIPVisitData
type TrackIPVisitData struct {
	City     *string `json:"city"`
	Region   *string `json:"region"`
	Country  *string `json:"country"`
	Timezone *string `json:"timezone"`
}

// NewTrackIPHandler returns an HTTP handler that records the caller's visit.
// @Summary Track a visit
// @Description Resolves the client IP to a location (best effort) and records the visit.
// @Tags tracking
// @Produce json
// @Success 200 {object} handlers.TrackIPResponse "Visit recorded"
// @Router /api/track-ip [get]
func NewTrackIPHandler(svc VisitTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visit, err := svc.TrackVisit(r.Context(), clientIP(r), r.UserAgent())
		if err != nil {
			logger.Log.Errorw("failed to track visit", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Failed to track IP"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrackIPResponse{
			Success: true,
			Data: TrackIPVisitData{
				City:     visit.City,
				Region:   visit.Region,
				Country:  visit.Country,
				Timezone: visit.Timezone,
			},
		})
	}
}

// clientIP extracts the real client address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
