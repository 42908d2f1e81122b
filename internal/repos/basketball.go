package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type BasketballPlayerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, players []*types.BasketballPlayer) ([]*types.BasketballPlayer, error)
	GetByID(ctx context.Context, tx *gorm.DB, playerID uint) (*types.BasketballPlayer, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BasketballPlayer, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
}

type basketballPlayerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBasketballPlayerRepo(db *gorm.DB, baseLog *logger.Logger) BasketballPlayerRepo {
	repoLog := baseLog.With("repo", "BasketballPlayerRepo")
	return &basketballPlayerRepo{db: db, log: repoLog}
}

func (br *basketballPlayerRepo) Create(ctx context.Context, tx *gorm.DB, players []*types.BasketballPlayer) ([]*types.BasketballPlayer, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	if len(players) == 0 {
		return []*types.BasketballPlayer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (br *basketballPlayerRepo) GetByID(ctx context.Context, tx *gorm.DB, playerID uint) (*types.BasketballPlayer, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var result types.BasketballPlayer
	if err := transaction.WithContext(ctx).
		First(&result, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (br *basketballPlayerRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BasketballPlayer, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.BasketballPlayer
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *basketballPlayerRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.BasketballPlayer{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type VideoTagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tags []*types.VideoTag) ([]*types.VideoTag, error)
	GetAllOrderedByTime(ctx context.Context, tx *gorm.DB) ([]*types.VideoTag, error)
}

type videoTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoTagRepo(db *gorm.DB, baseLog *logger.Logger) VideoTagRepo {
	repoLog := baseLog.With("repo", "VideoTagRepo")
	return &videoTagRepo{db: db, log: repoLog}
}

func (vr *videoTagRepo) Create(ctx context.Context, tx *gorm.DB, tags []*types.VideoTag) ([]*types.VideoTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(tags) == 0 {
		return []*types.VideoTag{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (vr *videoTagRepo) GetAllOrderedByTime(ctx context.Context, tx *gorm.DB) ([]*types.VideoTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.VideoTag
	if err := transaction.WithContext(ctx).
		Order("time ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type ShotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, shots []*types.Shot) ([]*types.Shot, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Shot, error)
}

type shotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShotRepo(db *gorm.DB, baseLog *logger.Logger) ShotRepo {
	repoLog := baseLog.With("repo", "ShotRepo")
	return &shotRepo{db: db, log: repoLog}
}

func (sr *shotRepo) Create(ctx context.Context, tx *gorm.DB, shots []*types.Shot) ([]*types.Shot, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(shots) == 0 {
		return []*types.Shot{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&shots).Error; err != nil {
		return nil, err
	}
	return shots, nil
}

func (sr *shotRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Shot, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Shot
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
