package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

// WeakTopic pairs a mistake topic with the owning subject's name.
type WeakTopic struct {
	Topic       string `json:"topic"`
	SubjectName string `json:"subject_name"`
}

type MistakeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mistakes []*types.Mistake) ([]*types.Mistake, error)
	ListWeakTopics(ctx context.Context, tx *gorm.DB, limit int) ([]WeakTopic, error)
	DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error
}

type mistakeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMistakeRepo(db *gorm.DB, baseLog *logger.Logger) MistakeRepo {
	repoLog := baseLog.With("repo", "MistakeRepo")
	return &mistakeRepo{db: db, log: repoLog}
}

func (mr *mistakeRepo) Create(ctx context.Context, tx *gorm.DB, mistakes []*types.Mistake) ([]*types.Mistake, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(mistakes) == 0 {
		return []*types.Mistake{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&mistakes).Error; err != nil {
		return nil, err
	}
	return mistakes, nil
}

func (mr *mistakeRepo) ListWeakTopics(ctx context.Context, tx *gorm.DB, limit int) ([]WeakTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	results := []WeakTopic{}
	if err := transaction.WithContext(ctx).
		Model(&types.Mistake{}).
		Select("mistake.topic AS topic, subject.name AS subject_name").
		Joins("JOIN subject ON subject.id = mistake.subject_id").
		Order("mistake.id ASC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mistakeRepo) DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Delete(&types.Mistake{}).Error
}
