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

type FlashcardService interface {
	ListForLecture(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) ([]*types.Flashcard, error)
	CreateFlashcard(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int, front, back string) (*types.Flashcard, error)
}

type flashcardService struct {
	db            *gorm.DB
	log           *logger.Logger
	subjectRepo   repos.SubjectRepo
	flashcardRepo repos.FlashcardRepo
}

func NewFlashcardService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	flashcardRepo repos.FlashcardRepo,
) FlashcardService {
	serviceLog := baseLog.With("service", "FlashcardService")
	return &flashcardService{
		db:            db,
		log:           serviceLog,
		subjectRepo:   subjectRepo,
		flashcardRepo: flashcardRepo,
	}
}

func (fs *flashcardService) ListForLecture(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fs.db
	}
	cards, err := fs.flashcardRepo.ListBySubjectAndLecture(ctx, transaction, subjectID, lectureNumber)
	if err != nil {
		fs.log.Error("ListForLecture failed", "error", err, "subject_id", subjectID)
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

func (fs *flashcardService) CreateFlashcard(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int, front, back string) (*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fs.db
	}

	if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
		return nil, fmt.Errorf("flashcard front and back are required: %w", ErrInvalid)
	}

	subjects, err := fs.subjectRepo.GetByIDs(ctx, transaction, []uint{subjectID})
	if err != nil {
		return nil, fmt.Errorf("load subject: %w", err)
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	card := &types.Flashcard{
		SubjectID: subjectID,
		LectureID: lectureNumber,
		Front:     front,
		Back:      back,
	}
	if _, err := fs.flashcardRepo.Create(ctx, transaction, []*types.Flashcard{card}); err != nil {
		fs.log.Error("CreateFlashcard failed", "error", err, "subject_id", subjectID)
		return nil, fmt.Errorf("create flashcard: %w", err)
	}
	return card, nil
}
