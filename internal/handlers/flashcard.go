package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
)

type FlashcardHandler struct {
	log              *logger.Logger
	flashcardService services.FlashcardService
}

func NewFlashcardHandler(log *logger.Logger, flashcardService services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{
		log:              log.With("handler", "FlashcardHandler"),
		flashcardService: flashcardService,
	}
}

type createFlashcardRequest struct {
	SubjectID uint   `json:"subject_id" binding:"required"`
	LectureID int    `json:"lecture_id" binding:"required"`
	Front     string `json:"front" binding:"required"`
	Back      string `json:"back" binding:"required"`
}

func (h *FlashcardHandler) ListFlashcards(c *gin.Context) {
	subjectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	lectureNumber, ok := intParam(c, "lectureNumber")
	if !ok {
		return
	}
	cards, err := h.flashcardService.ListForLecture(c.Request.Context(), nil, subjectID, lectureNumber)
	if err != nil {
		RespondServiceError(c, h.log, "list_flashcards_failed", err)
		return
	}
	RespondOK(c, cards)
}

func (h *FlashcardHandler) CreateFlashcard(c *gin.Context) {
	var req createFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	card, err := h.flashcardService.CreateFlashcard(c.Request.Context(), nil, req.SubjectID, req.LectureID, req.Front, req.Back)
	if err != nil {
		RespondServiceError(c, h.log, "create_flashcard_failed", err)
		return
	}
	RespondCreated(c, card)
}
