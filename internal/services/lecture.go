package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

// LectureUpdate is a partial update; nil fields are left untouched.
type LectureUpdate struct {
	UniLecs *int
	Studied *int
	Revised *bool
}

type LectureService interface {
	AddLecture(ctx context.Context, tx *gorm.DB, subjectID uint) (*types.Lecture, error)
	UpdateLecture(ctx context.Context, tx *gorm.DB, lectureID uint, update LectureUpdate) (*types.Lecture, error)
}

type lectureService struct {
	db          *gorm.DB
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
	lectureRepo repos.LectureRepo
}

func NewLectureService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	lectureRepo repos.LectureRepo,
) LectureService {
	serviceLog := baseLog.With("service", "LectureService")
	return &lectureService{
		db:          db,
		log:         serviceLog,
		subjectRepo: subjectRepo,
		lectureRepo: lectureRepo,
	}
}

// AddLecture assigns lecture_number = last + 1 within the subject.
// Deleted numbers are never reused and gaps are never filled.
func (ls *lectureService) AddLecture(ctx context.Context, tx *gorm.DB, subjectID uint) (*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = ls.db
	}

	subjects, err := ls.subjectRepo.GetByIDs(ctx, transaction, []uint{subjectID})
	if err != nil {
		return nil, fmt.Errorf("load subject: %w", err)
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	lastNumber, err := ls.lectureRepo.MaxNumberForSubject(ctx, transaction, subjectID)
	if err != nil {
		return nil, fmt.Errorf("resolve last lecture number: %w", err)
	}

	lecture := &types.Lecture{
		SubjectID:     subjectID,
		LectureNumber: lastNumber + 1,
		UniLecs:       1,
		Studied:       0,
	}
	if _, err := ls.lectureRepo.Create(ctx, transaction, []*types.Lecture{lecture}); err != nil {
		ls.log.Error("AddLecture failed", "error", err, "subject_id", subjectID)
		return nil, fmt.Errorf("create lecture: %w", err)
	}
	return lecture, nil
}

func (ls *lectureService) UpdateLecture(ctx context.Context, tx *gorm.DB, lectureID uint, update LectureUpdate) (*types.Lecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = ls.db
	}

	lecture, err := ls.lectureRepo.GetByID(ctx, transaction, lectureID)
	if err != nil {
		return nil, fmt.Errorf("load lecture: %w", err)
	}
	if lecture == nil {
		return nil, fmt.Errorf("lecture %d: %w", lectureID, ErrNotFound)
	}

	if update.UniLecs != nil {
		lecture.UniLecs = *update.UniLecs
	}
	if update.Studied != nil {
		lecture.Studied = *update.Studied
	}
	if update.Revised != nil {
		lecture.Revised = *update.Revised
	}

	if err := ls.lectureRepo.Save(ctx, transaction, lecture); err != nil {
		ls.log.Error("UpdateLecture failed", "error", err, "lecture_id", lectureID)
		return nil, fmt.Errorf("update lecture: %w", err)
	}
	return lecture, nil
}
