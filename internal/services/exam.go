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

type ExamService interface {
	ListExams(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error)
	CreateExam(ctx context.Context, tx *gorm.DB, name string, date types.Date) (*types.Exam, error)
}

type examService struct {
	db       *gorm.DB
	log      *logger.Logger
	examRepo repos.ExamRepo
}

func NewExamService(db *gorm.DB, baseLog *logger.Logger, examRepo repos.ExamRepo) ExamService {
	serviceLog := baseLog.With("service", "ExamService")
	return &examService{db: db, log: serviceLog, examRepo: examRepo}
}

func (es *examService) ListExams(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = es.db
	}
	exams, err := es.examRepo.GetAllOrdered(ctx, transaction)
	if err != nil {
		es.log.Error("ListExams failed", "error", err)
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

func (es *examService) CreateExam(ctx context.Context, tx *gorm.DB, name string, date types.Date) (*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = es.db
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("exam name is required: %w", ErrInvalid)
	}

	exam := &types.Exam{Name: name, Date: date}
	if _, err := es.examRepo.Create(ctx, transaction, []*types.Exam{exam}); err != nil {
		es.log.Error("CreateExam failed", "error", err, "name", name)
		return nil, fmt.Errorf("create exam: %w", err)
	}
	return exam, nil
}
