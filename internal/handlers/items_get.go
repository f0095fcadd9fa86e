package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ItemGetter defines the interface that the item service must implement.
type ItemGetter interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, *models.UserDB, error)
}

// ItemCreator info shown on the detail view
// swagger:model ItemCreatorInfo
type ItemCreatorInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ItemDetailResponse is an item enriched with its creator
// swagger:model ItemDetailResponse
type ItemDetailResponse struct {
	models.ItemDB
	Creator *ItemCreatorInfo `json:"creator,omitempty"`
}

// NewItemsGetHandler returns an HTTP handler for the item detail view.
// @Summary Get one item
// @Description Returns an item with embedded comments; the creator's display name is re-resolved at read time.
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} handlers.ItemDetailResponse "Item detail"
// @Failure 404 {object} handlers.RegisterErrorResponse "Item not found"
// @Router /api/items/{id} [get]
func NewItemsGetHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Item not found"})
			return
		}

		item, creator, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Item not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		resp := ItemDetailResponse{ItemDB: *item}
		if creator != nil {
			resp.Creator = &ItemCreatorInfo{
				ID:    creator.UserID,
				Name:  item.AuthorName,
				Email: creator.Email,
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
