package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type LectureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lectures []*types.Lecture) ([]*types.Lecture, error)
	GetByID(ctx context.Context, tx *gorm.DB, lectureID uint) (*types.Lecture, error)
	GetBySubjectAndNumber(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) (*types.Lecture, error)
	MaxNumberForSubject(ctx context.Context, tx *gorm.DB, subjectID uint) (int, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Lecture, error)
	Save(ctx context.Context, tx *gorm.DB, lecture *types.Lecture) error
	DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error
}

type lectureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLectureRepo(db *gorm.DB, baseLog *logger.Logger) LectureRepo {
	repoLog := baseLog.With("repo", "LectureRepo")
	return &lectureRepo{db: db, log: repoLog}
}

func (lr *lectureRepo) Create(ctx context.Context, tx *gorm.DB, lectures []*types.Lecture) ([]*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(lectures) == 0 {
		return []*types.Lecture{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

func (lr *lectureRepo) GetByID(ctx context.Context, tx *gorm.DB, lectureID uint) (*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.Lecture
	if err := transaction.WithContext(ctx).
		First(&result, lectureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (lr *lectureRepo) GetBySubjectAndNumber(ctx context.Context, tx *gorm.DB, subjectID uint, lectureNumber int) (*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.Lecture
	if err := transaction.WithContext(ctx).
		Where("subject_id = ? AND lecture_number = ?", subjectID, lectureNumber).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// MaxNumberForSubject returns 0 when the subject has no lectures yet.
// Numbers are allocated last+1 and never reused after deletion.
func (lr *lectureRepo) MaxNumberForSubject(ctx context.Context, tx *gorm.DB, subjectID uint) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var max *int
	if err := transaction.WithContext(ctx).
		Model(&types.Lecture{}).
		Where("subject_id = ?", subjectID).
		Select("MAX(lecture_number)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (lr *lectureRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.Lecture
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *lectureRepo) Save(ctx context.Context, tx *gorm.DB, lecture *types.Lecture) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).Save(lecture).Error
}

func (lr *lectureRepo) DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Delete(&types.Lecture{}).Error
}
