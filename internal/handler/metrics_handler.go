package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/service"
)

// MetricsHandler serves the Prometheus scrape endpoint.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler builds a new handler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Expose godoc
// @Summary Prometheus metrics
// @Tags Metrics
// @Produce plain
// @Success 200
// @Router /metrics [get]
func (h *MetricsHandler) Expose(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
