package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/services"
)

// PasswordResetConsumer defines the interface that the service must implement.
type PasswordResetConsumer interface {
	ConsumePasswordReset(ctx context.Context, email, rawToken, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for consuming a reset token
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Raw reset token from the emailed link
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	NewPassword string `json:"newPassword"`
}

// ResetPasswordResponse represents the reset outcome
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Outcome message
	// default: Password updated successfully
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler for consuming reset tokens.
// @Summary Reset a password
// @Description Exchanges a valid, unexpired reset token for a new password. Tokens are single use.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset consumption"
// @Success 200 {object} handlers.ResetPasswordResponse "Password replaced"
// @Failure 400 {object} handlers.ResetPasswordResponse "Invalid or expired token"
// @Router /api/auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetConsumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Invalid request body"})
			return
		}

		err := svc.ConsumePasswordReset(r.Context(), req.Email, req.Token, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Missing required fields"})
			case errors.Is(err, services.ErrInvalidResetToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Invalid or expired token"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Password updated successfully"})
	}
}
