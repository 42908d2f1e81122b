package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

// PomodoroLogRepo is append-only on purpose: logs are never updated or
// deleted once written.
type PomodoroLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.PomodoroLog) ([]*types.PomodoroLog, error)
	SumDurationBetween(ctx context.Context, tx *gorm.DB, from, to time.Time) (int, error)
	SumDurationSince(ctx context.Context, tx *gorm.DB, from time.Time) (int, error)
}

type pomodoroLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPomodoroLogRepo(db *gorm.DB, baseLog *logger.Logger) PomodoroLogRepo {
	repoLog := baseLog.With("repo", "PomodoroLogRepo")
	return &pomodoroLogRepo{db: db, log: repoLog}
}

func (pr *pomodoroLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.PomodoroLog) ([]*types.PomodoroLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(logs) == 0 {
		return []*types.PomodoroLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (pr *pomodoroLogRepo) SumDurationBetween(ctx context.Context, tx *gorm.DB, from, to time.Time) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var total *int
	if err := transaction.WithContext(ctx).
		Model(&types.PomodoroLog{}).
		Where("date >= ? AND date < ?", from, to).
		Select("SUM(duration)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (pr *pomodoroLogRepo) SumDurationSince(ctx context.Context, tx *gorm.DB, from time.Time) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var total *int
	if err := transaction.WithContext(ctx).
		Model(&types.PomodoroLog{}).
		Where("date >= ?", from).
		Select("SUM(duration)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
