package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

// PRRecord is a PR row joined with the exercise name for list views.
type PRRecord struct {
	ID           uint       `json:"id"`
	ExerciseID   uint       `json:"exercise_id"`
	Weight       float64    `json:"weight"`
	Reps         int        `json:"reps"`
	Date         types.Date `json:"date"`
	ExerciseName string     `json:"exercise_name"`
}

type PRRepo interface {
	Create(ctx context.Context, tx *gorm.DB, prs []*types.PR) ([]*types.PR, error)
	ListWithExerciseName(ctx context.Context, tx *gorm.DB) ([]PRRecord, error)
}

type prRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPRRepo(db *gorm.DB, baseLog *logger.Logger) PRRepo {
	repoLog := baseLog.With("repo", "PRRepo")
	return &prRepo{db: db, log: repoLog}
}

func (pr *prRepo) Create(ctx context.Context, tx *gorm.DB, prs []*types.PR) ([]*types.PR, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(prs) == 0 {
		return []*types.PR{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&prs).Error; err != nil {
		return nil, err
	}
	return prs, nil
}

func (pr *prRepo) ListWithExerciseName(ctx context.Context, tx *gorm.DB) ([]PRRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	results := []PRRecord{}
	if err := transaction.WithContext(ctx).
		Model(&types.PR{}).
		Select("pr.id, pr.exercise_id, pr.weight, pr.reps, pr.date, exercise.name AS exercise_name").
		Joins("JOIN exercise ON exercise.id = pr.exercise_id").
		Order("pr.date DESC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
