package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoService handles todo business logic
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	UserID uuid.UUID
	Title  string
}

// CreateTodo creates a todo owned by input.UserID
func (s *TodoService) CreateTodo(ctx context.Context, input CreateTodoInput) (uuid.UUID, error) {
	id, err := s.todoRepo.Create(ctx, input.UserID, input.Title)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return id, nil
}

// DeleteTodo deletes a todo. Todos owned by other users are reported as not found.
func (s *TodoService) DeleteTodo(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.todoRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// ListTodos returns the user's todos, optionally paginated
func (s *TodoService) ListTodos(ctx context.Context, userID uuid.UUID, page *utils.PaginationParams) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}
