package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/services"
)

// ItemsLister defines the interface that the feed service must implement.
type ItemsLister interface {
	ListItems(ctx context.Context, itemType, location, cursor string, limit int) ([]models.ItemDB, string, error)
}

// ItemsListResponse is one feed page
// swagger:model ItemsListResponse
type ItemsListResponse struct {
	Items []models.ItemDB `json:"items"`

	// Cursor for the next page; null at end of feed
	NextCursor *string `json:"nextCursor"`
}

// NewItemsListHandler returns an HTTP handler for the item feed.
// @Summary List lost/found items
// @Description Returns unexpired items, newest first, with cursor pagination and optional type/location filters.
// @Tags items
// @Produce json
// @Param type query string false "Filter by kind (lost|found)"
// @Param location query string false "Case-insensitive location substring"
// @Param limit query int false "Page size, max 50" default(20)
// @Param cursor query string false "Opaque cursor from the previous page"
// @Success 200 {object} handlers.ItemsListResponse "One feed page"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid cursor or type"
// @Router /api/items [get]
func NewItemsListHandler(svc ItemsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := 0
		if raw := q.Get("limit"); raw != "" {
			limit, _ = strconv.Atoi(raw)
		}

		items, nextCursor, err := svc.ListItems(r.Context(), q.Get("type"), q.Get("location"), q.Get("cursor"), limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCursor),
				errors.Is(err, services.ErrInvalidItemType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid filter or cursor"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		resp := ItemsListResponse{Items: items}
		if nextCursor != "" {
			resp.NextCursor = &nextCursor
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
