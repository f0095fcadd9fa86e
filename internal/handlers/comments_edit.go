package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CommentEditor defines the interface that the comment service must implement.
type CommentEditor interface {
	EditComment(ctx context.Context, itemID, commentID, userID uuid.UUID, text string) error
}

// CommentMutationResponse acknowledges an edit or delete
// swagger:model CommentMutationResponse
type CommentMutationResponse struct {
	Success bool `json:"success"`
}

// NewCommentsEditHandler returns an HTTP handler for editing comments.
// @Summary Edit a comment
// @Description Replaces the text of a comment. Only its owner may edit it.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item id"
// @Param commentId path string true "Comment id"
// @Param commentRequest body handlers.CommentRequest true "New text"
// @Success 200 {object} handlers.CommentMutationResponse "Comment updated"
// @Failure 400 {object} handlers.RegisterErrorResponse "Comment too short"
// @Failure 403 {object} handlers.RegisterErrorResponse "Not the owner"
// @Failure 404 {object} handlers.RegisterErrorResponse "Item or comment not found"
// @Router /api/items/{itemId}/comments/{commentId} [patch]
func NewCommentsEditHandler(svc CommentEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Item not found"})
			return
		}
		commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Comment not found"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		if err := svc.EditComment(r.Context(), itemID, commentID, claims.UserID, req.Text); err != nil {
			writeCommentMutationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CommentMutationResponse{Success: true})
	}
}

// writeCommentMutationError maps comment edit/delete failures onto statuses,
// shared by the edit and delete handlers.
func writeCommentMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCommentTooShort):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Comment too short"})
	case errors.Is(err, services.ErrItemNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Item not found"})
	case errors.Is(err, services.ErrCommentNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Comment not found"})
	case errors.Is(err, services.ErrNotCommentOwner):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not allowed"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
	}
}
