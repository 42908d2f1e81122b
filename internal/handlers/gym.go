package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type GymHandler struct {
	log        *logger.Logger
	gymService services.GymService
}

func NewGymHandler(log *logger.Logger, gymService services.GymService) *GymHandler {
	return &GymHandler{
		log:        log.With("handler", "GymHandler"),
		gymService: gymService,
	}
}

type createExerciseRequest struct {
	Name  string   `json:"name" binding:"required"`
	Group string   `json:"group"`
	Cues  string   `json:"cues"`
	Tags  []string `json:"tags"`
}

type createPRRequest struct {
	ExerciseID uint    `json:"exercise_id" binding:"required"`
	Weight     float64 `json:"weight" binding:"required"`
	Reps       int     `json:"reps" binding:"required"`
	Date       string  `json:"date"`
}

func (h *GymHandler) ListExercises(c *gin.Context) {
	exercises, err := h.gymService.ListExercises(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "list_exercises_failed", err)
		return
	}
	RespondOK(c, exercises)
}

func (h *GymHandler) CreateExercise(c *gin.Context) {
	var req createExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	exercise, err := h.gymService.CreateExercise(c.Request.Context(), nil, req.Name, req.Group, req.Cues, req.Tags)
	if err != nil {
		RespondServiceError(c, h.log, "create_exercise_failed", err)
		return
	}
	RespondCreated(c, exercise)
}

func (h *GymHandler) ListPRs(c *gin.Context) {
	records, err := h.gymService.ListPRs(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "list_prs_failed", err)
		return
	}
	RespondOK(c, records)
}

func (h *GymHandler) CreatePR(c *gin.Context) {
	var req createPRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	var date *types.Date
	if req.Date != "" {
		parsed, err := types.ParseDate(req.Date)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_date", err)
			return
		}
		date = &parsed
	}

	pr, err := h.gymService.CreatePR(c.Request.Context(), nil, req.ExerciseID, req.Weight, req.Reps, date)
	if err != nil {
		RespondServiceError(c, h.log, "create_pr_failed", err)
		return
	}
	RespondCreated(c, pr)
}
