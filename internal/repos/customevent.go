package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type CustomEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, events []*types.CustomEvent) ([]*types.CustomEvent, error)
	ListByDate(ctx context.Context, tx *gorm.DB, day types.Date) ([]*types.CustomEvent, error)
}

type customEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomEventRepo(db *gorm.DB, baseLog *logger.Logger) CustomEventRepo {
	repoLog := baseLog.With("repo", "CustomEventRepo")
	return &customEventRepo{db: db, log: repoLog}
}

func (er *customEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.CustomEvent) ([]*types.CustomEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(events) == 0 {
		return []*types.CustomEvent{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (er *customEventRepo) ListByDate(ctx context.Context, tx *gorm.DB, day types.Date) ([]*types.CustomEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.CustomEvent
	if err := transaction.WithContext(ctx).
		Where("event_date = ?", day).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
