package dto

import "github.com/gin-gonic/gin"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PaginationParams struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
	Offset   int `form:"-"`
}

// ParsePagination reads page and page_size from the query. Missing or
// malformed values fall back to the first page of defaultPageSize items.
func ParsePagination(c *gin.Context) PaginationParams {
	var p PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		p = PaginationParams{}
	}

	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = defaultPageSize
	case p.PageSize > maxPageSize:
		p.PageSize = maxPageSize
	}
	p.Offset = (p.Page - 1) * p.PageSize
	return p
}

func NewPagination(page, pageSize, totalItems int) Pagination {
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + pageSize - 1) / pageSize,
	}
}
