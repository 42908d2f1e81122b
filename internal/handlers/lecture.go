package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
)

type LectureHandler struct {
	log            *logger.Logger
	lectureService services.LectureService
}

func NewLectureHandler(log *logger.Logger, lectureService services.LectureService) *LectureHandler {
	return &LectureHandler{
		log:            log.With("handler", "LectureHandler"),
		lectureService: lectureService,
	}
}

// Absent fields leave the stored value unchanged.
type updateLectureRequest struct {
	UniLecs *int  `json:"uni_lecs"`
	Studied *int  `json:"studied"`
	Revised *bool `json:"revised"`
}

func (h *LectureHandler) AddLecture(c *gin.Context) {
	subjectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	lecture, err := h.lectureService.AddLecture(c.Request.Context(), nil, subjectID)
	if err != nil {
		RespondServiceError(c, h.log, "add_lecture_failed", err)
		return
	}
	RespondCreated(c, lecture)
}

func (h *LectureHandler) UpdateLecture(c *gin.Context) {
	lectureID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req updateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	lecture, err := h.lectureService.UpdateLecture(c.Request.Context(), nil, lectureID, services.LectureUpdate{
		UniLecs: req.UniLecs,
		Studied: req.Studied,
		Revised: req.Revised,
	})
	if err != nil {
		RespondServiceError(c, h.log, "update_lecture_failed", err)
		return
	}
	RespondOK(c, lecture)
}
