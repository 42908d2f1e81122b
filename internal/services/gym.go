package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type GymService interface {
	ListExercises(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	CreateExercise(ctx context.Context, tx *gorm.DB, name, group, cues string, tags []string) (*types.Exercise, error)
	ListPRs(ctx context.Context, tx *gorm.DB) ([]repos.PRRecord, error)
	CreatePR(ctx context.Context, tx *gorm.DB, exerciseID uint, weight float64, reps int, date *types.Date) (*types.PR, error)
}

type gymService struct {
	db           *gorm.DB
	log          *logger.Logger
	exerciseRepo repos.ExerciseRepo
	prRepo       repos.PRRepo
}

func NewGymService(
	db *gorm.DB,
	baseLog *logger.Logger,
	exerciseRepo repos.ExerciseRepo,
	prRepo repos.PRRepo,
) GymService {
	serviceLog := baseLog.With("service", "GymService")
	return &gymService{
		db:           db,
		log:          serviceLog,
		exerciseRepo: exerciseRepo,
		prRepo:       prRepo,
	}
}

func (gs *gymService) ListExercises(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = gs.db
	}
	exercises, err := gs.exerciseRepo.GetAll(ctx, transaction)
	if err != nil {
		gs.log.Error("ListExercises failed", "error", err)
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (gs *gymService) CreateExercise(ctx context.Context, tx *gorm.DB, name, group, cues string, tags []string) (*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = gs.db
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("exercise name is required: %w", ErrInvalid)
	}

	exists, err := gs.exerciseRepo.NameExists(ctx, transaction, trimmed)
	if err != nil {
		return nil, fmt.Errorf("check exercise name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("exercise with this name already exists: %w", ErrConflict)
	}

	if tags == nil {
		tags = []string{}
	}
	rawTags, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	exercise := &types.Exercise{
		Name:  trimmed,
		Group: group,
		Cues:  cues,
		Tags:  datatypes.JSON(rawTags),
	}
	if _, err := gs.exerciseRepo.Create(ctx, transaction, []*types.Exercise{exercise}); err != nil {
		gs.log.Error("CreateExercise failed", "error", err, "name", trimmed)
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

func (gs *gymService) ListPRs(ctx context.Context, tx *gorm.DB) ([]repos.PRRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = gs.db
	}
	records, err := gs.prRepo.ListWithExerciseName(ctx, transaction)
	if err != nil {
		gs.log.Error("ListPRs failed", "error", err)
		return nil, fmt.Errorf("list prs: %w", err)
	}
	return records, nil
}

func (gs *gymService) CreatePR(ctx context.Context, tx *gorm.DB, exerciseID uint, weight float64, reps int, date *types.Date) (*types.PR, error) {
	transaction := tx
	if transaction == nil {
		transaction = gs.db
	}

	exercise, err := gs.exerciseRepo.GetByID(ctx, transaction, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("load exercise: %w", err)
	}
	if exercise == nil {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, ErrNotFound)
	}

	prDate := types.Today()
	if date != nil {
		prDate = *date
	}

	pr := &types.PR{
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Date:       prDate,
	}
	if _, err := gs.prRepo.Create(ctx, transaction, []*types.PR{pr}); err != nil {
		gs.log.Error("CreatePR failed", "error", err, "exercise_id", exerciseID)
		return nil, fmt.Errorf("create pr: %w", err)
	}
	return pr, nil
}
