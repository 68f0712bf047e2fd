package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. ok is false when the caller asked for neither page nor limit, in
// which case the full result set is expected.
func GetPaginationParams(c *gin.Context) (params PaginationParams, ok bool) {
	pageStr, hasPage := c.GetQuery("page")
	limitStr, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return PaginationParams{}, false
	}

	return NewPaginationParams(pageStr, limitStr), true
}

// NewPaginationParams clamps raw page/limit values into a usable window.
func NewPaginationParams(pageStr, limitStr string) PaginationParams {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
