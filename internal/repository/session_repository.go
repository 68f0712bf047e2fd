package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormSessionRepository is a GORM implementation of SessionRepository.
// Validity is always compared against the database clock.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &GormSessionRepository{db: db}
}

// Create inserts a session; valid_until is left to the schema default.
func (r *GormSessionRepository) Create(ctx context.Context, userID uuid.UUID, token string) error {
	session := models.Session{
		Token:  token,
		UserID: userID,
	}

	err := r.db.WithContext(ctx).Omit("ValidUntil").Create(&session).Error
	return translateError(err)
}

// Expire sets valid_until to now. Matching zero rows is not an error.
func (r *GormSessionRepository) Expire(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE sessions SET valid_until = CURRENT_TIMESTAMP WHERE token = ?", token).
		Error
}

// FindUserByToken returns the owner of an active session
func (r *GormSessionRepository) FindUserByToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.username", "users.created_at", "users.updated_at").
		Joins("INNER JOIN sessions ON sessions.user_id = users.id").
		Where("sessions.token = ? AND sessions.valid_until > CURRENT_TIMESTAMP", token).
		Take(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
