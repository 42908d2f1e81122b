package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type PlayerStats struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	FGM      int    `json:"FGM"`
	FGA      int    `json:"FGA"`
	AST      int    `json:"AST"`
	PTS      int    `json:"PTS"`
}

type TagWithPlayer struct {
	types.VideoTag
	PlayerName string `json:"player_name"`
}

type GameData struct {
	Players []*types.BasketballPlayer `json:"players"`
	Tags    []TagWithPlayer           `json:"tags"`
	Shots   []*types.Shot             `json:"shots"`
	Stats   []PlayerStats             `json:"stats"`
}

type BasketballService interface {
	GameData(ctx context.Context, tx *gorm.DB) (*GameData, error)
	CreatePlayer(ctx context.Context, tx *gorm.DB, name string) (*types.BasketballPlayer, error)
	CreateTag(ctx context.Context, tx *gorm.DB, tag *types.VideoTag) (*types.VideoTag, error)
	CreateShot(ctx context.Context, tx *gorm.DB, shot *types.Shot) (*types.Shot, error)
}

type basketballService struct {
	db         *gorm.DB
	log        *logger.Logger
	playerRepo repos.BasketballPlayerRepo
	tagRepo    repos.VideoTagRepo
	shotRepo   repos.ShotRepo
}

func NewBasketballService(
	db *gorm.DB,
	baseLog *logger.Logger,
	playerRepo repos.BasketballPlayerRepo,
	tagRepo repos.VideoTagRepo,
	shotRepo repos.ShotRepo,
) BasketballService {
	serviceLog := baseLog.With("service", "BasketballService")
	return &basketballService{
		db:         db,
		log:        serviceLog,
		playerRepo: playerRepo,
		tagRepo:    tagRepo,
		shotRepo:   shotRepo,
	}
}

// ComputeStats folds the tag stream into a per-player box score. Tags
// referencing unknown players are skipped, unrecognized stat types are
// ignored, and all made field goals count 2 points. Shots are a
// separate log and never contribute here.
func ComputeStats(players []*types.BasketballPlayer, tags []*types.VideoTag) []PlayerStats {
	index := make(map[uint]int, len(players))
	stats := make([]PlayerStats, 0, len(players))
	for i, player := range players {
		index[player.ID] = i
		stats = append(stats, PlayerStats{PlayerID: player.ID, Name: player.Name})
	}

	for _, tag := range tags {
		i, known := index[tag.PlayerID]
		if !known {
			continue
		}
		switch tag.StatType {
		case types.StatFGAMade:
			stats[i].FGM++
			stats[i].FGA++
		case types.StatFGAMissed:
			stats[i].FGA++
		case types.StatAssist:
			stats[i].AST++
		}
	}

	for i := range stats {
		stats[i].PTS = stats[i].FGM * 2
	}
	return stats
}

func (bs *basketballService) GameData(ctx context.Context, tx *gorm.DB) (*GameData, error) {
	transaction := tx
	if transaction == nil {
		transaction = bs.db
	}

	players, err := bs.playerRepo.GetAll(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	tags, err := bs.tagRepo.GetAllOrderedByTime(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	shots, err := bs.shotRepo.GetAll(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load shots: %w", err)
	}

	names := make(map[uint]string, len(players))
	for _, player := range players {
		names[player.ID] = player.Name
	}
	tagged := make([]TagWithPlayer, 0, len(tags))
	for _, tag := range tags {
		tagged = append(tagged, TagWithPlayer{VideoTag: *tag, PlayerName: names[tag.PlayerID]})
	}

	return &GameData{
		Players: players,
		Tags:    tagged,
		Shots:   shots,
		Stats:   ComputeStats(players, tags),
	}, nil
}

func (bs *basketballService) CreatePlayer(ctx context.Context, tx *gorm.DB, name string) (*types.BasketballPlayer, error) {
	transaction := tx
	if transaction == nil {
		transaction = bs.db
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("player name is required: %w", ErrInvalid)
	}

	exists, err := bs.playerRepo.NameExists(ctx, transaction, trimmed)
	if err != nil {
		return nil, fmt.Errorf("check player name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("player with this name already exists: %w", ErrConflict)
	}

	player := &types.BasketballPlayer{Name: trimmed}
	if _, err := bs.playerRepo.Create(ctx, transaction, []*types.BasketballPlayer{player}); err != nil {
		bs.log.Error("CreatePlayer failed", "error", err, "name", trimmed)
		return nil, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}

func (bs *basketballService) CreateTag(ctx context.Context, tx *gorm.DB, tag *types.VideoTag) (*types.VideoTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = bs.db
	}

	player, err := bs.playerRepo.GetByID(ctx, transaction, tag.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("player %d: %w", tag.PlayerID, ErrNotFound)
	}

	if _, err := bs.tagRepo.Create(ctx, transaction, []*types.VideoTag{tag}); err != nil {
		bs.log.Error("CreateTag failed", "error", err, "player_id", tag.PlayerID)
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (bs *basketballService) CreateShot(ctx context.Context, tx *gorm.DB, shot *types.Shot) (*types.Shot, error) {
	transaction := tx
	if transaction == nil {
		transaction = bs.db
	}

	if shot.PlayerID == 0 {
		shot.PlayerID = types.DefaultPlayerID
	}

	player, err := bs.playerRepo.GetByID(ctx, transaction, shot.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("player %d: %w", shot.PlayerID, ErrNotFound)
	}

	if _, err := bs.shotRepo.Create(ctx, transaction, []*types.Shot{shot}); err != nil {
		bs.log.Error("CreateShot failed", "error", err, "player_id", shot.PlayerID)
		return nil, fmt.Errorf("create shot: %w", err)
	}
	return shot, nil
}
