package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

func newPomodoroService(t *testing.T) (PomodoroService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewPomodoroService(db, log,
		repos.NewPomodoroLogRepo(db, log),
		repos.NewLectureRepo(db, log),
	)
	return svc, db
}

func TestLogSessionCreditsLecture(t *testing.T) {
	svc, db := newPomodoroService(t)
	ctx := context.Background()

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	lecture := types.Lecture{SubjectID: subject.ID, LectureNumber: 3, UniLecs: 1, TotalTime: 100}
	mustCreate(t, db, &lecture)

	lectureNumber := 3
	entry, err := svc.LogSession(ctx, 1500, &subject.ID, &lectureNumber)
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	if entry.ID == 0 {
		t.Error("log entry was not persisted")
	}
	if entry.Duration != 1500 {
		t.Errorf("duration = %d, want 1500", entry.Duration)
	}

	var reloaded types.Lecture
	if err := db.First(&reloaded, lecture.ID).Error; err != nil {
		t.Fatalf("reload lecture: %v", err)
	}
	if reloaded.TotalTime != 1600 {
		t.Errorf("total_time = %d, want 1600", reloaded.TotalTime)
	}
}

func TestLogSessionUnresolvedLectureStillRecords(t *testing.T) {
	svc, db := newPomodoroService(t)
	ctx := context.Background()

	subjectID := uint(99)
	lectureNumber := 4
	entry, err := svc.LogSession(ctx, 300, &subjectID, &lectureNumber)
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	if entry.ID == 0 {
		t.Error("log entry was not persisted")
	}

	var count int64
	if err := db.Model(&types.PomodoroLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if count != 1 {
		t.Errorf("log count = %d, want 1", count)
	}
}

func TestLogSessionWithoutFocus(t *testing.T) {
	svc, _ := newPomodoroService(t)

	entry, err := svc.LogSession(context.Background(), 1500, nil, nil)
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	if entry.SubjectID != nil || entry.LectureID != nil {
		t.Errorf("focus refs should stay nil: %+v", entry)
	}
}
