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

type MistakeService interface {
	CreateMistake(ctx context.Context, tx *gorm.DB, topic, description string, subjectID uint) (*types.Mistake, error)
}

type mistakeService struct {
	db          *gorm.DB
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
	mistakeRepo repos.MistakeRepo
}

func NewMistakeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	mistakeRepo repos.MistakeRepo,
) MistakeService {
	serviceLog := baseLog.With("service", "MistakeService")
	return &mistakeService{
		db:          db,
		log:         serviceLog,
		subjectRepo: subjectRepo,
		mistakeRepo: mistakeRepo,
	}
}

func (ms *mistakeService) CreateMistake(ctx context.Context, tx *gorm.DB, topic, description string, subjectID uint) (*types.Mistake, error) {
	transaction := tx
	if transaction == nil {
		transaction = ms.db
	}

	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("mistake topic is required: %w", ErrInvalid)
	}

	subjects, err := ms.subjectRepo.GetByIDs(ctx, transaction, []uint{subjectID})
	if err != nil {
		return nil, fmt.Errorf("load subject: %w", err)
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	mistake := &types.Mistake{
		Topic:       topic,
		Description: description,
		SubjectID:   subjectID,
	}
	if _, err := ms.mistakeRepo.Create(ctx, transaction, []*types.Mistake{mistake}); err != nil {
		ms.log.Error("CreateMistake failed", "error", err, "subject_id", subjectID)
		return nil, fmt.Errorf("create mistake: %w", err)
	}
	return mistake, nil
}
