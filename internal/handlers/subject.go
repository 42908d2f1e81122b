package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
)

type SubjectHandler struct {
	log            *logger.Logger
	subjectService services.SubjectService
}

func NewSubjectHandler(log *logger.Logger, subjectService services.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		log:            log.With("handler", "SubjectHandler"),
		subjectService: subjectService,
	}
}

type createSubjectRequest struct {
	Name string `json:"name"`
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "list_subjects_failed", err)
		return
	}
	RespondOK(c, subjects)
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req createSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	subject, err := h.subjectService.CreateSubject(c.Request.Context(), nil, req.Name)
	if err != nil {
		RespondServiceError(c, h.log, "create_subject_failed", err)
		return
	}
	RespondCreated(c, subject)
}

func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	subjectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.subjectService.DeleteSubject(c.Request.Context(), subjectID); err != nil {
		RespondServiceError(c, h.log, "delete_subject_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": subjectID})
}
