// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/store"
)

const Version = "1.0.0"

type HealthHandler struct {
	store  store.Store
	driver string
}

func NewHealthHandler(st store.Store, driver string) *HealthHandler {
	return &HealthHandler{store: st, driver: driver}
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"storage": h.driver,
			"version": Version,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"storage": h.driver,
		"version": Version,
	})
}
