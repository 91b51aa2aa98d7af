package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationDB represents a one-time email verification token record
type VerificationDB struct {
	Token      uuid.UUID `json:"token" db:"token"`             // Primary key, the token itself
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owning user, one token row per user at a time
	Verified   bool      `json:"verified" db:"verified"`       // True once the token has been consumed
	ExpiryTime time.Time `json:"expiry_time" db:"expiry_time"` // Consumption is rejected after this instant
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// VerificationMessage is the payload published to the notification topic
// when a verification token is issued.
type VerificationMessage struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	VerificationToken string `json:"verificationToken"`
}
