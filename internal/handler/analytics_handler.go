package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	"github.com/noah-isme/attendance-tracker-api/pkg/response"
)

type analyticsService interface {
	Compute(ctx context.Context) (*models.OverallStats, error)
}

// AnalyticsHandler serves aggregate attendance statistics.
type AnalyticsHandler struct {
	service analyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(svc analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// Overall godoc
// @Summary Overall and per-subject attendance statistics
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.OverallStats
// @Router /analytics [get]
func (h *AnalyticsHandler) Overall(c *gin.Context) {
	stats, err := h.service.Compute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
