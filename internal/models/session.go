package models

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a bearer token to a user until ValidUntil. The default
// validity window is set by the schema.
type Session struct {
	Token      string    `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ValidUntil time.Time `gorm:"not null"`
}
