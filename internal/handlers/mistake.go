package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
)

type MistakeHandler struct {
	log            *logger.Logger
	mistakeService services.MistakeService
}

func NewMistakeHandler(log *logger.Logger, mistakeService services.MistakeService) *MistakeHandler {
	return &MistakeHandler{
		log:            log.With("handler", "MistakeHandler"),
		mistakeService: mistakeService,
	}
}

type createMistakeRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Description string `json:"description" binding:"required"`
	SubjectID   uint   `json:"subject_id" binding:"required"`
}

func (h *MistakeHandler) CreateMistake(c *gin.Context) {
	var req createMistakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	mistake, err := h.mistakeService.CreateMistake(c.Request.Context(), nil, req.Topic, req.Description, req.SubjectID)
	if err != nil {
		RespondServiceError(c, h.log, "create_mistake_failed", err)
		return
	}
	RespondCreated(c, mistake)
}
