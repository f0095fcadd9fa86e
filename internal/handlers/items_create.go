package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/google/uuid"
)

// ItemCreator defines the interface that the item service must implement.
type ItemCreator interface {
	CreateItem(ctx context.Context, userID uuid.UUID, in services.CreateItemInput) (*models.ItemDB, error)
}

// ItemCreateRequest represents the JSON body for reporting an item
// swagger:model ItemCreateRequest
type ItemCreateRequest struct {
	// Short title
	// required: true
	Title string `json:"title"`

	// Free-form description
	// required: true
	Description string `json:"description"`

	// lost | found
	// required: true
	Type string `json:"type"`

	// Where it was lost/found
	LocationText string `json:"locationText"`

	// Where to pick it up
	WhereToClaim string `json:"whereToClaim"`

	// When it happened, RFC 3339
	DateHappened *time.Time `json:"dateHappened"`

	// Uploaded image references
	Images []models.ImageRef `json:"images"`
}

// NewItemsCreateHandler returns an HTTP handler for creating items.
// @Summary Report a lost or found item
// @Description Creates a new report owned by the authenticated user, expiring after 30 days.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemCreateRequest body handlers.ItemCreateRequest true "New report"
// @Success 201 {object} models.ItemDB "Created item"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields / invalid type"
// @Router /api/items [post]
func NewItemsCreateHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		var req ItemCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		item, err := svc.CreateItem(r.Context(), claims.UserID, services.CreateItemInput{
			Title:        req.Title,
			Description:  req.Description,
			Type:         req.Type,
			LocationText: req.LocationText,
			WhereToClaim: req.WhereToClaim,
			DateHappened: req.DateHappened,
			Images:       req.Images,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingItemFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields"})
			case errors.Is(err, services.ErrInvalidItemType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid type"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}
}
