package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type ExerciseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exercises []*types.Exercise) ([]*types.Exercise, error)
	GetByID(ctx context.Context, tx *gorm.DB, exerciseID uint) (*types.Exercise, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
}

type exerciseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExerciseRepo(db *gorm.DB, baseLog *logger.Logger) ExerciseRepo {
	repoLog := baseLog.With("repo", "ExerciseRepo")
	return &exerciseRepo{db: db, log: repoLog}
}

func (er *exerciseRepo) Create(ctx context.Context, tx *gorm.DB, exercises []*types.Exercise) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(exercises) == 0 {
		return []*types.Exercise{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (er *exerciseRepo) GetByID(ctx context.Context, tx *gorm.DB, exerciseID uint) (*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var result types.Exercise
	if err := transaction.WithContext(ctx).
		First(&result, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (er *exerciseRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.Exercise
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *exerciseRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Exercise{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
