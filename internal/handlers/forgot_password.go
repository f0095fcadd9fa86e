package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/services"
)

// PasswordResetRequester defines the interface that the service must implement.
type PasswordResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a reset link
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: john@student.edu
	Email string `json:"email"`
}

// ForgotPasswordResponse is returned regardless of account existence
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Generic message
	// default: If that account exists, a reset link has been sent
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler for reset-link requests.
// @Summary Request a password reset
// @Description Sends a reset link when the account exists. The response never reveals whether it does.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Generic confirmation"
// @Router /api/auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Email is required"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ForgotPasswordResponse{
			Message: "If that account exists, a reset link has been sent",
		})
	}
}
