package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
)

type PomodoroHandler struct {
	log             *logger.Logger
	pomodoroService services.PomodoroService
}

func NewPomodoroHandler(log *logger.Logger, pomodoroService services.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{
		log:             log.With("handler", "PomodoroHandler"),
		pomodoroService: pomodoroService,
	}
}

// Duration is a pointer so a missing field is distinguishable from an
// explicit zero.
type logPomodoroRequest struct {
	Duration  *int  `json:"duration" binding:"required"`
	SubjectID *uint `json:"subject_id"`
	LectureID *int  `json:"lecture_id"`
}

func (h *PomodoroHandler) LogPomodoro(c *gin.Context) {
	var req logPomodoroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	entry, err := h.pomodoroService.LogSession(c.Request.Context(), *req.Duration, req.SubjectID, req.LectureID)
	if err != nil {
		RespondServiceError(c, h.log, "log_pomodoro_failed", err)
		return
	}
	RespondCreated(c, entry)
}
