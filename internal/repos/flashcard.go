package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type FlashcardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, flashcards []*types.Flashcard) ([]*types.Flashcard, error)
	ListBySubjectAndLecture(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) ([]*types.Flashcard, error)
	DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error
}

type flashcardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlashcardRepo(db *gorm.DB, baseLog *logger.Logger) FlashcardRepo {
	repoLog := baseLog.With("repo", "FlashcardRepo")
	return &flashcardRepo{db: db, log: repoLog}
}

func (fr *flashcardRepo) Create(ctx context.Context, tx *gorm.DB, flashcards []*types.Flashcard) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(flashcards) == 0 {
		return []*types.Flashcard{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&flashcards).Error; err != nil {
		return nil, err
	}
	return flashcards, nil
}

func (fr *flashcardRepo) ListBySubjectAndLecture(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.Flashcard
	if err := transaction.WithContext(ctx).
		Where("subject_id = ? AND lecture_id = ?", subjectID, lectureNumber).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *flashcardRepo) DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Delete(&types.Flashcard{}).Error
}
