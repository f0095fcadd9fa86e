package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID            uuid.UUID  `json:"id" db:"user_id"`                            // Primary key
	FullName          string     `json:"full_name" db:"full_name"`                   // Display name
	Email             string     `json:"email" db:"email"`                           // Unique, stored lowercase
	PasswordHash      string     `json:"-" db:"password_hash"`                       // Bcrypt hash, never serialized
	Institution       string     `json:"institution" db:"institution"`               // University / campus
	ResetTokenHash    *string    `json:"-" db:"reset_token_hash"`                    // SHA-256 of the raw reset token
	ResetTokenExpires *time.Time `json:"-" db:"reset_token_expires_at"`              // Reset token deadline
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}
