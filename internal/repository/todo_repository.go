package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create inserts a todo and returns its ID
func (r *GormTodoRepository) Create(ctx context.Context, userID uuid.UUID, title string) (uuid.UUID, error) {
	todo := models.Todo{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}

	if err := r.db.WithContext(ctx).Create(&todo).Error; err != nil {
		return uuid.Nil, translateError(err)
	}
	return todo.ID, nil
}

// Delete removes a todo. A todo owned by someone else is reported as not found.
func (r *GormTodoRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Todo{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the user's todos ordered by creation time
func (r *GormTodoRepository) ListByUser(ctx context.Context, userID uuid.UUID, page *utils.PaginationParams) ([]models.Todo, error) {
	query := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").
		Order("id ASC")
	if page != nil {
		query = query.Scopes(database.Paginate(*page))
	}

	todos := []models.Todo{}
	if err := query.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}
