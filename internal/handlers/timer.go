package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/timer"
)

type TimerHandler struct {
	log   *logger.Logger
	timer *timer.Controller
}

func NewTimerHandler(log *logger.Logger, controller *timer.Controller) *TimerHandler {
	return &TimerHandler{
		log:   log.With("handler", "TimerHandler"),
		timer: controller,
	}
}

type startTimerRequest struct {
	SubjectID *uint `json:"subject_id"`
	LectureID *int  `json:"lecture_id"`
}

func (h *TimerHandler) GetState(c *gin.Context) {
	RespondOK(c, h.timer.State())
}

func (h *TimerHandler) Start(c *gin.Context) {
	var req startTimerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
		h.timer.SetFocus(req.SubjectID, req.LectureID)
	}
	h.timer.Start()
	RespondOK(c, h.timer.State())
}

func (h *TimerHandler) Stop(c *gin.Context) {
	h.timer.Stop()
	RespondOK(c, h.timer.State())
}

func (h *TimerHandler) Reset(c *gin.Context) {
	h.timer.Reset()
	RespondOK(c, h.timer.State())
}

func (h *TimerHandler) Skip(c *gin.Context) {
	h.timer.Skip()
	RespondOK(c, h.timer.State())
}
