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

type SubjectService interface {
	ListSubjects(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error)
	CreateSubject(ctx context.Context, tx *gorm.DB, name string) (*types.Subject, error)
	DeleteSubject(ctx context.Context, subjectID uint) error
}

type subjectService struct {
	db            *gorm.DB
	log           *logger.Logger
	subjectRepo   repos.SubjectRepo
	lectureRepo   repos.LectureRepo
	flashcardRepo repos.FlashcardRepo
	mistakeRepo   repos.MistakeRepo
}

func NewSubjectService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	lectureRepo repos.LectureRepo,
	flashcardRepo repos.FlashcardRepo,
	mistakeRepo repos.MistakeRepo,
) SubjectService {
	serviceLog := baseLog.With("service", "SubjectService")
	return &subjectService{
		db:            db,
		log:           serviceLog,
		subjectRepo:   subjectRepo,
		lectureRepo:   lectureRepo,
		flashcardRepo: flashcardRepo,
		mistakeRepo:   mistakeRepo,
	}
}

func (ss *subjectService) ListSubjects(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = ss.db
	}
	subjects, err := ss.subjectRepo.GetAllWithLectures(ctx, transaction)
	if err != nil {
		ss.log.Error("ListSubjects failed", "error", err)
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (ss *subjectService) CreateSubject(ctx context.Context, tx *gorm.DB, name string) (*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = ss.db
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("subject name is required: %w", ErrInvalid)
	}

	exists, err := ss.subjectRepo.NameExists(ctx, transaction, trimmed)
	if err != nil {
		return nil, fmt.Errorf("check subject name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("subject with this name already exists: %w", ErrConflict)
	}

	subject := &types.Subject{Name: trimmed}
	if _, err := ss.subjectRepo.Create(ctx, transaction, []*types.Subject{subject}); err != nil {
		ss.log.Error("CreateSubject failed", "error", err, "name", trimmed)
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return subject, nil
}

// DeleteSubject removes a subject and cascades to its lectures,
// flashcards and mistakes in one transaction.
func (ss *subjectService) DeleteSubject(ctx context.Context, subjectID uint) error {
	found, err := ss.subjectRepo.GetByIDs(ctx, nil, []uint{subjectID})
	if err != nil {
		return fmt.Errorf("load subject: %w", err)
	}
	if len(found) == 0 {
		return fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ss.flashcardRepo.DeleteBySubjectID(ctx, tx, subjectID); err != nil {
			return err
		}
		if err := ss.mistakeRepo.DeleteBySubjectID(ctx, tx, subjectID); err != nil {
			return err
		}
		if err := ss.lectureRepo.DeleteBySubjectID(ctx, tx, subjectID); err != nil {
			return err
		}
		return ss.subjectRepo.Delete(ctx, tx, subjectID)
	})
	if err != nil {
		ss.log.Error("DeleteSubject failed", "error", err, "subject_id", subjectID)
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}
