package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type BasketballHandler struct {
	log               *logger.Logger
	basketballService services.BasketballService
}

func NewBasketballHandler(log *logger.Logger, basketballService services.BasketballService) *BasketballHandler {
	return &BasketballHandler{
		log:               log.With("handler", "BasketballHandler"),
		basketballService: basketballService,
	}
}

type createPlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

type createTagRequest struct {
	Time     *float64 `json:"time" binding:"required"`
	PlayerID uint     `json:"player_id" binding:"required"`
	Category string   `json:"category"`
	Action   string   `json:"action"`
	StatType string   `json:"stat_type"`
}

// PlayerID defaults to the seeded player when omitted.
type createShotRequest struct {
	X        *float64 `json:"x" binding:"required"`
	Y        *float64 `json:"y" binding:"required"`
	Made     *bool    `json:"made" binding:"required"`
	PlayerID uint     `json:"player_id"`
}

func (h *BasketballHandler) GetData(c *gin.Context) {
	data, err := h.basketballService.GameData(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, h.log, "load_basketball_data_failed", err)
		return
	}
	RespondOK(c, data)
}

func (h *BasketballHandler) CreatePlayer(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	player, err := h.basketballService.CreatePlayer(c.Request.Context(), nil, req.Name)
	if err != nil {
		RespondServiceError(c, h.log, "create_player_failed", err)
		return
	}
	RespondCreated(c, player)
}

func (h *BasketballHandler) CreateTag(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	tag := &types.VideoTag{
		Time:     *req.Time,
		PlayerID: req.PlayerID,
		Category: req.Category,
		Action:   req.Action,
		StatType: req.StatType,
	}
	created, err := h.basketballService.CreateTag(c.Request.Context(), nil, tag)
	if err != nil {
		RespondServiceError(c, h.log, "create_tag_failed", err)
		return
	}
	RespondCreated(c, created)
}

func (h *BasketballHandler) CreateShot(c *gin.Context) {
	var req createShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	shot := &types.Shot{
		X:        *req.X,
		Y:        *req.Y,
		Made:     *req.Made,
		PlayerID: req.PlayerID,
	}
	created, err := h.basketballService.CreateShot(c.Request.Context(), nil, shot)
	if err != nil {
		RespondServiceError(c, h.log, "create_shot_failed", err)
		return
	}
	RespondCreated(c, created)
}
