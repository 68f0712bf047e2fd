package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/repository"
)

// HealthHandler reports liveness and database activity.
type HealthHandler struct {
	stats repository.StatsRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(stats repository.StatsRepository) *HealthHandler {
	return &HealthHandler{stats: stats}
}

// Default answers the root path.
func (h *HealthHandler) Default(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "default"})
}

// Health reports the number of active queries on the application database.
func (h *HealthHandler) Health(c *gin.Context) {
	count, err := h.stats.ActiveQueries(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to count active queries")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", QueryCount: count})
}
