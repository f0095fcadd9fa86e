package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/google/uuid"
)

// EmailChanger defines the interface that the service must implement.
type EmailChanger interface {
	ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail, currentPassword string) (string, error)
}

// ChangeEmailRequest represents the JSON body for changing the account email
// swagger:model ChangeEmailRequest
type ChangeEmailRequest struct {
	// New email
	// required: true
	NewEmail string `json:"newEmail"`

	// Current password, re-verified before the change
	// required: true
	Password string `json:"password"`
}

// ChangeEmailResponse carries the updated (normalized) email
// swagger:model ChangeEmailResponse
type ChangeEmailResponse struct {
	Email string `json:"email"`
}

// NewChangeEmailHandler returns an HTTP handler for email changes.
// @Summary Change account email
// @Description Updates the authenticated user's email after re-verifying the current password.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changeEmailRequest body handlers.ChangeEmailRequest true "Email change request"
// @Success 200 {object} handlers.ChangeEmailResponse "Updated email"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields / email already in use"
// @Failure 401 {object} handlers.RegisterErrorResponse "Wrong password"
// @Failure 404 {object} handlers.RegisterErrorResponse "Account no longer exists"
// @Router /api/auth/change-email [patch]
func NewChangeEmailHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		var req ChangeEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		email, err := svc.ChangeEmail(r.Context(), claims.UserID, req.NewEmail, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields"})
			case errors.Is(err, services.ErrEmailAlreadyUsed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Email already in use"})
			case errors.Is(err, services.ErrIncorrectCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect credentials"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangeEmailResponse{Email: email})
	}
}
