package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	FirstName    string    `json:"first_name" db:"first_name"` // First name
	LastName     string    `json:"last_name" db:"last_name"`   // Last name
	Email        string    `json:"email" db:"email"`           // Unique email, identity of the account
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	Verified     bool      `json:"verified" db:"verified"`     // Flips once, on token consumption
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
