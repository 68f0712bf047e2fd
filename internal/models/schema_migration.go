package models

import "time"

// SchemaMigration records an applied embedded migration.
type SchemaMigration struct {
	Version   string    `gorm:"primaryKey;size:255"`
	AppliedAt time.Time `gorm:"not null"`
}
