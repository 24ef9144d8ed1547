package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"", 1, 20, 0},
		{"?page=3&page_size=10", 3, 10, 20},
		{"?page=0&page_size=-5", 1, 20, 0},
		{"?page_size=101", 1, 100, 0},
		{"?page=abc", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/vehicles"+tt.query, nil)

			p := ParsePagination(c)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.offset, p.Offset)
		})
	}
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
	assert.Equal(t, 1, NewPagination(1, 20, 20).TotalPages)
	assert.Equal(t, 3, NewPagination(1, 10, 21).TotalPages)
}
