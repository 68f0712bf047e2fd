package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
	Todos    []Todo    `gorm:"foreignKey:UserID" json:"-"`
}

// Credentials is the projection of a user needed to verify a login.
type Credentials struct {
	ID           uuid.UUID
	PasswordHash string
}
