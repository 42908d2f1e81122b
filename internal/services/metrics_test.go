package services

import (
	"context"
	"testing"
	"time"

	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

func newMetricsService(t *testing.T) MetricsService {
	t.Helper()
	db := newTestDB(t)
	log := testLogger(t)
	return NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)
}

func TestDashboardMetricsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	metrics, err := svc.ComputeDashboardMetrics(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeDashboardMetrics: %v", err)
	}
	if metrics.Pomodoro.Daily != 0 || metrics.Pomodoro.Weekly != 0 || metrics.Pomodoro.Monthly != 0 {
		t.Errorf("totals should be zero on empty data: %+v", metrics.Pomodoro)
	}
	if len(metrics.Exams) != 0 {
		t.Errorf("exams = %v, want empty", metrics.Exams)
	}
	if len(metrics.WeakTopics) != 0 {
		t.Errorf("weak topics = %v, want empty", metrics.WeakTopics)
	}
}

func TestDashboardMetricsPomodoroWindows(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	// Wednesday 2026-03-04. The week runs Monday 03-02 .. Sunday 03-08,
	// the month starts 03-01.
	today := types.NewDate(2026, time.March, 4)
	at := func(year int, month time.Month, day, hour int) time.Time {
		return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	}
	logs := []types.PomodoroLog{
		{Date: at(2026, time.March, 4, 9), Duration: 1500},  // today
		{Date: at(2026, time.March, 4, 15), Duration: 300},  // today
		{Date: at(2026, time.March, 2, 10), Duration: 1500}, // this week
		{Date: at(2026, time.March, 1, 10), Duration: 600},  // this month only
		{Date: at(2026, time.February, 27, 10), Duration: 9999}, // out of all windows
	}
	for i := range logs {
		mustCreate(t, db, &logs[i])
	}

	metrics, err := svc.ComputeDashboardMetrics(context.Background(), nil, today)
	if err != nil {
		t.Fatalf("ComputeDashboardMetrics: %v", err)
	}
	if metrics.Pomodoro.Daily != 1800 {
		t.Errorf("daily = %d, want 1800", metrics.Pomodoro.Daily)
	}
	if metrics.Pomodoro.Weekly != 3300 {
		t.Errorf("weekly = %d, want 3300", metrics.Pomodoro.Weekly)
	}
	if metrics.Pomodoro.Monthly != 3900 {
		t.Errorf("monthly = %d, want 3900", metrics.Pomodoro.Monthly)
	}
}

func TestDashboardMetricsExamCountdowns(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	mustCreate(t, db, &types.Exam{Name: "Physiology", Date: types.NewDate(2026, time.March, 14)})
	mustCreate(t, db, &types.Exam{Name: "Anatomy", Date: types.NewDate(2026, time.February, 20)})

	metrics, err := svc.ComputeDashboardMetrics(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeDashboardMetrics: %v", err)
	}
	if len(metrics.Exams) != 2 {
		t.Fatalf("len(exams) = %d, want 2", len(metrics.Exams))
	}
	// Ordered by exam date; past exams floor at zero days left.
	if metrics.Exams[0].Name != "Anatomy" || metrics.Exams[0].DaysLeft != 0 {
		t.Errorf("exams[0] = %s/%d, want Anatomy/0", metrics.Exams[0].Name, metrics.Exams[0].DaysLeft)
	}
	if metrics.Exams[1].Name != "Physiology" || metrics.Exams[1].DaysLeft != 10 {
		t.Errorf("exams[1] = %s/%d, want Physiology/10", metrics.Exams[1].Name, metrics.Exams[1].DaysLeft)
	}
}

func TestDashboardMetricsWeakTopicLimit(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	for i := 0; i < 7; i++ {
		mustCreate(t, db, &types.Mistake{Topic: "Brachial plexus", Description: "mixed up cords", SubjectID: subject.ID})
	}

	metrics, err := svc.ComputeDashboardMetrics(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeDashboardMetrics: %v", err)
	}
	if len(metrics.WeakTopics) != weakTopicLimit {
		t.Errorf("len(weak topics) = %d, want %d", len(metrics.WeakTopics), weakTopicLimit)
	}
	if len(metrics.WeakTopics) > 0 && metrics.WeakTopics[0].SubjectName != "Anatomy" {
		t.Errorf("subject_name = %q, want Anatomy", metrics.WeakTopics[0].SubjectName)
	}
}

func TestReverseScheduleNoExams(t *testing.T) {
	svc := newMetricsService(t)

	schedule, err := svc.ComputeReverseSchedule(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeReverseSchedule: %v", err)
	}
	if schedule.Available {
		t.Error("schedule should be unavailable without exams")
	}
}

func TestReverseSchedulePacing(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	// 12 + 10 assigned, 2 studied: 20 remaining.
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 1, UniLecs: 12, Studied: 1})
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 2, UniLecs: 10, Studied: 1})
	mustCreate(t, db, &types.Exam{Name: "Anatomy Final", Date: types.NewDate(2026, time.March, 14)})
	// A later exam must not drive the pacing.
	mustCreate(t, db, &types.Exam{Name: "Physiology", Date: types.NewDate(2026, time.April, 2)})

	schedule, err := svc.ComputeReverseSchedule(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeReverseSchedule: %v", err)
	}
	if !schedule.Available {
		t.Fatal("schedule should be available")
	}
	if schedule.ExamName != "Anatomy Final" {
		t.Errorf("exam_name = %q, want Anatomy Final", schedule.ExamName)
	}
	if schedule.DaysUntilExam != 10 {
		t.Errorf("days_until_exam = %d, want 10", schedule.DaysUntilExam)
	}
	if schedule.TotalLecturesRemaining != 20 {
		t.Errorf("total_lectures_remaining = %d, want 20", schedule.TotalLecturesRemaining)
	}
	// 20 lectures over 7 usable days (last 3 stay free) = 2.857 → 2.9.
	if schedule.LecturesPerDay != 2.9 {
		t.Errorf("lectures_per_day = %v, want 2.9", schedule.LecturesPerDay)
	}
}

func TestReverseScheduleOverstudiedLectureOffsetsTotal(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	// Studied past the assignment: (1-3) + (4-0) = 2 remaining.
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 1, UniLecs: 1, Studied: 3})
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 2, UniLecs: 4, Studied: 0})
	mustCreate(t, db, &types.Exam{Name: "Anatomy Final", Date: types.NewDate(2026, time.March, 14)})

	schedule, err := svc.ComputeReverseSchedule(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeReverseSchedule: %v", err)
	}
	if schedule.TotalLecturesRemaining != 2 {
		t.Errorf("total_lectures_remaining = %d, want 2", schedule.TotalLecturesRemaining)
	}
}

func TestReverseScheduleExamTooClose(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewMetricsService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewExamRepo(db, log),
		repos.NewMistakeRepo(db, log),
		repos.NewLectureRepo(db, log),
	)

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 1, UniLecs: 5, Studied: 0})
	mustCreate(t, db, &types.Exam{Name: "Anatomy Final", Date: types.NewDate(2026, time.March, 6)})

	schedule, err := svc.ComputeReverseSchedule(context.Background(), nil, types.NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatalf("ComputeReverseSchedule: %v", err)
	}
	// 2 days out: inside the 3-day buffer, no daily pace is suggested.
	if schedule.LecturesPerDay != 0 {
		t.Errorf("lectures_per_day = %v, want 0", schedule.LecturesPerDay)
	}
	if schedule.TotalLecturesRemaining != 5 {
		t.Errorf("total_lectures_remaining = %d, want 5", schedule.TotalLecturesRemaining)
	}
}
