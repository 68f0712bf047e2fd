package dto

import (
	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
)

// CreateUserRequest is the body of POST /api/user
type CreateUserRequest struct {
	Username string `json:"username" binding:"min=5,max=255"`
	Password string `json:"password" binding:"min=5,passwordbytes"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token for subsequent requests
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateResponse is returned by endpoints that create a resource
type CreateResponse struct {
	ID uuid.UUID `json:"id"`
}

// StatusResponse is returned by the root endpoint
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status     string `json:"status"`
	QueryCount int64  `json:"query_count"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: NewTimestamp(user.CreatedAt),
		UpdatedAt: NewTimestamp(user.UpdatedAt),
	}
}
