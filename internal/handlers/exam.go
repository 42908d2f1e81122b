package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type ExamHandler struct {
	log         *logger.Logger
	examService services.ExamService
}

func NewExamHandler(log *logger.Logger, examService services.ExamService) *ExamHandler {
	return &ExamHandler{
		log:         log.With("handler", "ExamHandler"),
		examService: examService,
	}
}

type createExamRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.examService.ListExams(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "list_exams_failed", err)
		return
	}
	RespondOK(c, exams)
}

func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	date, err := types.ParseDate(req.Date)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return
	}
	exam, err := h.examService.CreateExam(c.Request.Context(), nil, req.Name, date)
	if err != nil {
		RespondServiceError(c, h.log, "create_exam_failed", err)
		return
	}
	RespondCreated(c, exam)
}
