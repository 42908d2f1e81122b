package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type SubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subjects []*types.Subject) ([]*types.Subject, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, subjectIDs []uint) ([]*types.Subject, error)
	GetAllWithLectures(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, subjectID uint) error
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	repoLog := baseLog.With("repo", "SubjectRepo")
	return &subjectRepo{db: db, log: repoLog}
}

func (sr *subjectRepo) Create(ctx context.Context, tx *gorm.DB, subjects []*types.Subject) ([]*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(subjects) == 0 {
		return []*types.Subject{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&subjects).Error; err != nil {
		return nil, err
	}

	return subjects, nil
}

func (sr *subjectRepo) GetByIDs(ctx context.Context, tx *gorm.DB, subjectIDs []uint) ([]*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Subject
	if len(subjectIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", subjectIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *subjectRepo) GetAllWithLectures(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Subject
	if err := transaction.WithContext(ctx).
		Preload("Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Order("lecture_number ASC")
		}).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *subjectRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subject{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *subjectRepo) Delete(ctx context.Context, tx *gorm.DB, subjectID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Delete(&types.Subject{}, subjectID).Error
}
