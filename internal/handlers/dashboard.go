package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type DashboardHandler struct {
	log            *logger.Logger
	metricsService services.MetricsService
}

func NewDashboardHandler(log *logger.Logger, metricsService services.MetricsService) *DashboardHandler {
	return &DashboardHandler{
		log:            log.With("handler", "DashboardHandler"),
		metricsService: metricsService,
	}
}

func (h *DashboardHandler) GetDashboardMetrics(c *gin.Context) {
	metrics, err := h.metricsService.ComputeDashboardMetrics(c.Request.Context(), nil, types.Today())
	if err != nil {
		RespondServiceError(c, h.log, "load_dashboard_metrics_failed", err)
		return
	}
	RespondOK(c, metrics)
}

func (h *DashboardHandler) GetReverseSchedule(c *gin.Context) {
	schedule, err := h.metricsService.ComputeReverseSchedule(c.Request.Context(), nil, types.Today())
	if err != nil {
		RespondServiceError(c, h.log, "load_reverse_schedule_failed", err)
		return
	}
	RespondOK(c, schedule)
}
