package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/google/uuid"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@student.edu
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginUser is the public profile returned after login
// swagger:model LoginUser
type LoginUser struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Institution string    `json:"institution"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Session token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Public profile
	User LoginUser `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Incorrect credentials
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a session token. Unknown email and wrong password produce the same error.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token and profile"
// @Failure 400 {object} handlers.LoginErrorResponse "Incorrect credentials / invalid request body"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIncorrectCredentials),
				errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Incorrect credentials",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			User: LoginUser{
				ID:          user.UserID,
				FullName:    user.FullName,
				Email:       user.Email,
				Institution: user.Institution,
			},
		})
	}
}
