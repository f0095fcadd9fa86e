package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/google/uuid"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, fullName, email, password, institution string) (uuid.UUID, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full display name
	// required: true
	// default: John Doe
	FullName string `json:"fullName"`

	// Email
	// required: true
	// default: john@student.edu
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Institution
	// default: Example University
	Institution string `json:"institution"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User created successfully
	Message string `json:"message"`

	// Created user id
	ID uuid.UUID `json:"id"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already in use
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email is normalized and must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields / email already in use"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		userID, err := svc.Register(r.Context(), req.FullName, req.Email, req.Password, req.Institution)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Missing required fields",
				})
			case errors.Is(err, services.ErrEmailAlreadyUsed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User created successfully",
			ID:      userID,
		})
	}
}
