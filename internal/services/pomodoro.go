package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type PomodoroService interface {
	// LogSession appends a pomodoro log and, when the optional
	// (subjectID, lectureNumber) pair resolves to a lecture, adds the
	// duration to that lecture's accumulated total in the same
	// transaction. An unresolvable reference still records the log so
	// the duration is never lost.
	LogSession(ctx context.Context, durationSeconds int, subjectID *uint, lectureNumber *int) (*types.PomodoroLog, error)
}

type pomodoroService struct {
	db          *gorm.DB
	log         *logger.Logger
	logRepo     repos.PomodoroLogRepo
	lectureRepo repos.LectureRepo
}

func NewPomodoroService(
	db *gorm.DB,
	baseLog *logger.Logger,
	logRepo repos.PomodoroLogRepo,
	lectureRepo repos.LectureRepo,
) PomodoroService {
	serviceLog := baseLog.With("service", "PomodoroService")
	return &pomodoroService{
		db:          db,
		log:         serviceLog,
		logRepo:     logRepo,
		lectureRepo: lectureRepo,
	}
}

func (ps *pomodoroService) LogSession(ctx context.Context, durationSeconds int, subjectID *uint, lectureNumber *int) (*types.PomodoroLog, error) {
	entry := &types.PomodoroLog{
		Date:      time.Now().UTC(),
		Duration:  durationSeconds,
		SubjectID: subjectID,
		LectureID: lectureNumber,
	}

	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ps.logRepo.Create(ctx, tx, []*types.PomodoroLog{entry}); err != nil {
			return fmt.Errorf("create pomodoro log: %w", err)
		}

		if subjectID == nil || lectureNumber == nil {
			return nil
		}

		lecture, err := ps.lectureRepo.GetBySubjectAndNumber(ctx, tx, *subjectID, *lectureNumber)
		if err != nil {
			return fmt.Errorf("resolve lecture: %w", err)
		}
		if lecture == nil {
			ps.log.Debug("Lecture reference did not resolve, log recorded without lecture update",
				"subject_id", *subjectID, "lecture_number", *lectureNumber)
			return nil
		}

		lecture.TotalTime += durationSeconds
		if err := ps.lectureRepo.Save(ctx, tx, lecture); err != nil {
			return fmt.Errorf("update lecture total time: %w", err)
		}
		return nil
	})
	if err != nil {
		ps.log.Error("LogSession failed", "error", err, "duration", durationSeconds)
		return nil, err
	}
	return entry, nil
}
