package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/todo-api/internal/constants"
)

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        PaginationParams
	}{
		{"explicit", "3", "10", PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{"garbage falls back", "x", "y", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"limit too large", "2", "100000", PaginationParams{Page: 2, Limit: constants.DefaultPageSize, Offset: constants.DefaultPageSize}},
		{"page below one", "0", "5", PaginationParams{Page: 1, Limit: 5, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationParams(tt.page, tt.limit))
		})
	}
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/todo", nil)
	_, ok := GetPaginationParams(c)
	assert.False(t, ok)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/todo?limit=2", nil)
	params, ok := GetPaginationParams(c)
	assert.True(t, ok)
	assert.Equal(t, PaginationParams{Page: 1, Limit: 2, Offset: 0}, params)
}
