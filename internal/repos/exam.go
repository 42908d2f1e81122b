package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type ExamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exams []*types.Exam) ([]*types.Exam, error)
	GetAllOrdered(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error)
}

type examRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExamRepo(db *gorm.DB, baseLog *logger.Logger) ExamRepo {
	repoLog := baseLog.With("repo", "ExamRepo")
	return &examRepo{db: db, log: repoLog}
}

func (er *examRepo) Create(ctx context.Context, tx *gorm.DB, exams []*types.Exam) ([]*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(exams) == 0 {
		return []*types.Exam{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (er *examRepo) GetAllOrdered(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.Exam
	if err := transaction.WithContext(ctx).
		Order("date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
