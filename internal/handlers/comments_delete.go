package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CommentDeleter defines the interface that the comment service must implement.
type CommentDeleter interface {
	DeleteComment(ctx context.Context, itemID, commentID, userID uuid.UUID) error
}

// NewCommentsDeleteHandler returns an HTTP handler for deleting comments.
// @Summary Delete a comment
// @Description Removes a comment from an item. Only its owner may delete it.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item id"
// @Param commentId path string true "Comment id"
// @Success 200 {object} handlers.CommentMutationResponse "Comment removed"
// @Failure 403 {object} handlers.RegisterErrorResponse "Not the owner"
// @Failure 404 {object} handlers.RegisterErrorResponse "Item or comment not found"
// @Router /api/items/{itemId}/comments/{commentId} [delete]
func NewCommentsDeleteHandler(svc CommentDeleter) http.HandlerFunc {
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

		if err := svc.DeleteComment(r.Context(), itemID, commentID, claims.UserID); err != nil {
			writeCommentMutationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CommentMutationResponse{Success: true})
	}
}
