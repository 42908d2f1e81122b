package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

const weakTopicLimit = 5

type PomodoroTotals struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

type ExamCountdown struct {
	types.Exam
	DaysLeft int `json:"days_left"`
}

type DashboardMetrics struct {
	Pomodoro   PomodoroTotals    `json:"pomodoro"`
	Exams      []ExamCountdown   `json:"exams"`
	WeakTopics []repos.WeakTopic `json:"weak_topics"`
}

type ReverseSchedule struct {
	Available              bool        `json:"available"`
	ExamName               string      `json:"exam_name,omitempty"`
	ExamDate               *types.Date `json:"exam_date,omitempty"`
	DaysUntilExam          int         `json:"days_until_exam,omitempty"`
	TotalLecturesRemaining int         `json:"total_lectures_remaining,omitempty"`
	LecturesPerDay         float64     `json:"lectures_per_day,omitempty"`
}

type MetricsService interface {
	ComputeDashboardMetrics(ctx context.Context, tx *gorm.DB, today types.Date) (*DashboardMetrics, error)
	ComputeReverseSchedule(ctx context.Context, tx *gorm.DB, today types.Date) (*ReverseSchedule, error)
}

type metricsService struct {
	db          *gorm.DB
	log         *logger.Logger
	logRepo     repos.PomodoroLogRepo
	examRepo    repos.ExamRepo
	mistakeRepo repos.MistakeRepo
	lectureRepo repos.LectureRepo
}

func NewMetricsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	logRepo repos.PomodoroLogRepo,
	examRepo repos.ExamRepo,
	mistakeRepo repos.MistakeRepo,
	lectureRepo repos.LectureRepo,
) MetricsService {
	serviceLog := baseLog.With("service", "MetricsService")
	return &metricsService{
		db:          db,
		log:         serviceLog,
		logRepo:     logRepo,
		examRepo:    examRepo,
		mistakeRepo: mistakeRepo,
		lectureRepo: lectureRepo,
	}
}

func (ms *metricsService) ComputeDashboardMetrics(ctx context.Context, tx *gorm.DB, today types.Date) (*DashboardMetrics, error) {
	transaction := tx
	if transaction == nil {
		transaction = ms.db
	}

	dayStart := today.Time
	dayEnd := dayStart.AddDate(0, 0, 1)
	// Week starts Monday.
	weekOffset := (int(dayStart.Weekday()) + 6) % 7
	weekStart := dayStart.AddDate(0, 0, -weekOffset)
	monthStart := time.Date(dayStart.Year(), dayStart.Month(), 1, 0, 0, 0, 0, time.UTC)

	daily, err := ms.logRepo.SumDurationBetween(ctx, transaction, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("daily total: %w", err)
	}
	weekly, err := ms.logRepo.SumDurationSince(ctx, transaction, weekStart)
	if err != nil {
		return nil, fmt.Errorf("weekly total: %w", err)
	}
	monthly, err := ms.logRepo.SumDurationSince(ctx, transaction, monthStart)
	if err != nil {
		return nil, fmt.Errorf("monthly total: %w", err)
	}

	exams, err := ms.examRepo.GetAllOrdered(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load exams: %w", err)
	}
	countdowns := make([]ExamCountdown, 0, len(exams))
	for _, exam := range exams {
		daysLeft := daysBetween(today, exam.Date)
		if daysLeft < 0 {
			daysLeft = 0
		}
		countdowns = append(countdowns, ExamCountdown{Exam: *exam, DaysLeft: daysLeft})
	}

	weakTopics, err := ms.mistakeRepo.ListWeakTopics(ctx, transaction, weakTopicLimit)
	if err != nil {
		return nil, fmt.Errorf("load weak topics: %w", err)
	}

	return &DashboardMetrics{
		Pomodoro:   PomodoroTotals{Daily: daily, Weekly: weekly, Monthly: monthly},
		Exams:      countdowns,
		WeakTopics: weakTopics,
	}, nil
}

// ComputeReverseSchedule paces remaining lectures against the nearest
// exam, keeping the last 3 days before it free. Per-lecture deltas are
// deliberately not floored at zero: a lecture studied past its target
// offsets the remaining total, matching the behavior the dashboard has
// always shown.
func (ms *metricsService) ComputeReverseSchedule(ctx context.Context, tx *gorm.DB, today types.Date) (*ReverseSchedule, error) {
	transaction := tx
	if transaction == nil {
		transaction = ms.db
	}

	exams, err := ms.examRepo.GetAllOrdered(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load exams: %w", err)
	}
	if len(exams) == 0 {
		return &ReverseSchedule{Available: false}, nil
	}

	nearest := exams[0]
	daysUntilExam := daysBetween(today, nearest.Date)

	lectures, err := ms.lectureRepo.GetAll(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("load lectures: %w", err)
	}
	totalRemaining := 0
	for _, lecture := range lectures {
		totalRemaining += lecture.UniLecs - lecture.Studied
	}

	lecturesPerDay := 0.0
	if totalRemaining > 0 && daysUntilExam > 3 {
		lecturesPerDay = math.Round(float64(totalRemaining)/float64(daysUntilExam-3)*10) / 10
	}

	examDate := nearest.Date
	return &ReverseSchedule{
		Available:              true,
		ExamName:               nearest.Name,
		ExamDate:               &examDate,
		DaysUntilExam:          daysUntilExam,
		TotalLecturesRemaining: totalRemaining,
		LecturesPerDay:         lecturesPerDay,
	}, nil
}

func daysBetween(from, to types.Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}
