package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type ScheduleHandler struct {
	log             *logger.Logger
	scheduleService services.ScheduleService
}

func NewScheduleHandler(log *logger.Logger, scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		log:             log.With("handler", "ScheduleHandler"),
		scheduleService: scheduleService,
	}
}

type createEventRequest struct {
	Title     string `json:"title" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Color     string `json:"color"`
}

func (h *ScheduleHandler) ListTodaySchedule(c *gin.Context) {
	events, err := h.scheduleService.ListEventsForDay(c.Request.Context(), nil, types.Today())
	if err != nil {
		RespondServiceError(c, h.log, "list_schedule_failed", err)
		return
	}
	RespondOK(c, events)
}

func (h *ScheduleHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	event, err := h.scheduleService.CreateEvent(c.Request.Context(), nil, req.Title, req.StartTime, req.EndTime, req.Color)
	if err != nil {
		RespondServiceError(c, h.log, "create_event_failed", err)
		return
	}
	RespondCreated(c, event)
}
