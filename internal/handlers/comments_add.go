package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CommentAdder defines the interface that the comment service must implement.
type CommentAdder interface {
	AddComment(ctx context.Context, itemID, userID uuid.UUID, text string) (*models.Comment, error)
}

// CommentRequest represents the JSON body for adding or editing a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text, 2-400 characters after trimming
	// required: true
	Text string `json:"text"`
}

// NewCommentsAddHandler returns an HTTP handler for adding comments.
// @Summary Comment on an item
// @Description Appends a comment, owned by the authenticated user, to an item's embedded list.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item id"
// @Param commentRequest body handlers.CommentRequest true "Comment text"
// @Success 201 {object} models.Comment "Created comment"
// @Failure 400 {object} handlers.RegisterErrorResponse "Comment too short"
// @Failure 404 {object} handlers.RegisterErrorResponse "Item not found"
// @Router /api/items/{id}/comments [post]
func NewCommentsAddHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Item not found"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		comment, err := svc.AddComment(r.Context(), itemID, claims.UserID, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCommentTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Comment too short"})
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comment)
	}
}
