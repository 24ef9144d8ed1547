package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports on db and, when cache is non-nil, on the cache.
// An unreachable cache degrades the service but does not make it unhealthy.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	resp := gin.H{"status": "healthy", "database": "connected"}

	if h.cache != nil {
		resp["cache"] = "connected"
		if err := h.cache.Ping(ctx); err != nil {
			resp["cache"] = "disconnected"
			resp["status"] = "degraded"
		}
	}

	if err := h.db.Ping(ctx); err != nil {
		resp["database"] = "disconnected"
		resp["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
