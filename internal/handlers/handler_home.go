package handlers

import (
	"log/slog"
	"net/http"

	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_quote_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthHandler reports liveness plus store connectivity.
type healthHandler struct {
	store portsrepo.HealthChecker
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports whether the server is up and the transaction store is reachable.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.store.Ping(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Store health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
}
