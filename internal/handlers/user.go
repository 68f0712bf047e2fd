package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
)

// UserHandler serves account registration, lookup and deletion.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			apierrors.Conflict(c, "Username already exists")
			return
		}
		log.Error().Err(err).Msg("failed to register user")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// GetMe returns the authenticated user.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes the authenticated user with all their sessions and todos.
func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to delete user")
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusOK)
}
