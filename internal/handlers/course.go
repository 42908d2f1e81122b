package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

type createCourseRequest struct {
	Title           string `json:"title" binding:"required"`
	Platform        string `json:"platform"`
	Category        string `json:"category"`
	TotalUnits      int    `json:"total_units"`
	CompletedUnits  int    `json:"completed_units"`
	TargetDate      string `json:"target_date"`
	SessionsPerWeek int    `json:"sessions_per_week"`
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "list_courses_failed", err)
		return
	}
	RespondOK(c, courses)
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	var targetDate *types.Date
	if req.TargetDate != "" {
		parsed, err := types.ParseDate(req.TargetDate)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_date", err)
			return
		}
		targetDate = &parsed
	}

	course := &types.Course{
		Title:           req.Title,
		Platform:        req.Platform,
		Category:        req.Category,
		TotalUnits:      req.TotalUnits,
		CompletedUnits:  req.CompletedUnits,
		TargetDate:      targetDate,
		SessionsPerWeek: req.SessionsPerWeek,
	}
	created, err := h.courseService.CreateCourse(c.Request.Context(), nil, course)
	if err != nil {
		RespondServiceError(c, h.log, "create_course_failed", err)
		return
	}
	RespondCreated(c, created)
}
