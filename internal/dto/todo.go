package dto

import (
	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
)

// CreateTodoRequest is the body of POST /api/todo
type CreateTodoRequest struct {
	Title string `json:"title" binding:"min=1"`
}

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	CreatedAt  Timestamp  `json:"created_at"`
	UpdatedAt  Timestamp  `json:"updated_at"`
	FinishedAt *Timestamp `json:"finished_at,omitempty"`
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	out := TodoDTO{
		ID:        todo.ID,
		Title:     todo.Title,
		CreatedAt: NewTimestamp(todo.CreatedAt),
		UpdatedAt: NewTimestamp(todo.UpdatedAt),
	}
	if todo.FinishedAt != nil {
		finished := NewTimestamp(*todo.FinishedAt)
		out.FinishedAt = &finished
	}
	return out
}

// ToTodoDTOs converts a slice of todos, never returning nil
func ToTodoDTOs(todos []models.Todo) []TodoDTO {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}
	return items
}
