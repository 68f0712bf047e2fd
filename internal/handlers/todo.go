package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
	"github.com/yukikurage/todo-api/internal/utils"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// Create adds a todo for the current user
func (h *TodoHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.todoService.CreateTodo(c.Request.Context(), services.CreateTodoInput{
		UserID: user.ID,
		Title:  req.Title,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to create todo")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// Delete removes one of the current user's todos.
// Another user's todo is indistinguishable from a missing one.
func (h *TodoHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.UnprocessableEntity(c, "Invalid todo id", []FieldError{{Field: "id", Rule: "uuid"}})
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			apierrors.NotFound(c, "Todo not found")
			return
		}
		log.Error().Err(err).Str("todo_id", id.String()).Msg("failed to delete todo")
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusOK)
}

// List returns the current user's todos, oldest first.
// Without page or limit every todo is returned.
func (h *TodoHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var page *utils.PaginationParams
	if params, ok := utils.GetPaginationParams(c); ok {
		page = &params
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), user.ID, page)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to list todos")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTOs(todos))
}
