package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user and returns its ID
func (r *GormUserRepository) Create(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return uuid.Nil, translateError(err)
	}
	return user.ID, nil
}

// FindCredentials returns the ID and password hash for a username
func (r *GormUserRepository) FindCredentials(ctx context.Context, username string) (*models.Credentials, error) {
	var creds models.Credentials
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "password_hash").
		Where("username = ?", username).
		Take(&creds).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &creds, nil
}

// Delete removes the user's sessions, todos and the user row atomically.
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Todo{}).Error; err != nil {
			return fmt.Errorf("delete todos: %w", err)
		}

		if err := tx.Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		return nil
	})
}
