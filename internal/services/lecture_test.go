package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

func newLectureService(t *testing.T) (LectureService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewLectureService(db, log,
		repos.NewSubjectRepo(db, log),
		repos.NewLectureRepo(db, log),
	)
	return svc, db
}

func TestAddLectureNumbersSequentially(t *testing.T) {
	svc, db := newLectureService(t)
	ctx := context.Background()

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)

	first, err := svc.AddLecture(ctx, nil, subject.ID)
	if err != nil {
		t.Fatalf("AddLecture: %v", err)
	}
	second, err := svc.AddLecture(ctx, nil, subject.ID)
	if err != nil {
		t.Fatalf("AddLecture: %v", err)
	}
	if first.LectureNumber != 1 || second.LectureNumber != 2 {
		t.Errorf("lecture numbers = %d, %d, want 1, 2", first.LectureNumber, second.LectureNumber)
	}
	if first.UniLecs != 1 {
		t.Errorf("uni_lecs = %d, want default 1", first.UniLecs)
	}
}

func TestAddLectureNumbersArePerSubject(t *testing.T) {
	svc, db := newLectureService(t)
	ctx := context.Background()

	anatomy := types.Subject{Name: "Anatomy"}
	physio := types.Subject{Name: "Physiology"}
	mustCreate(t, db, &anatomy)
	mustCreate(t, db, &physio)

	if _, err := svc.AddLecture(ctx, nil, anatomy.ID); err != nil {
		t.Fatalf("AddLecture: %v", err)
	}
	other, err := svc.AddLecture(ctx, nil, physio.ID)
	if err != nil {
		t.Fatalf("AddLecture: %v", err)
	}
	if other.LectureNumber != 1 {
		t.Errorf("lecture number = %d, want 1 (counters are per subject)", other.LectureNumber)
	}
}

func TestAddLectureMissingSubject(t *testing.T) {
	svc, _ := newLectureService(t)

	_, err := svc.AddLecture(context.Background(), nil, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateLecturePartial(t *testing.T) {
	svc, db := newLectureService(t)
	ctx := context.Background()

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	lecture := types.Lecture{SubjectID: subject.ID, LectureNumber: 1, UniLecs: 2, Studied: 1, Revised: false}
	mustCreate(t, db, &lecture)

	studied := 2
	updated, err := svc.UpdateLecture(ctx, nil, lecture.ID, LectureUpdate{Studied: &studied})
	if err != nil {
		t.Fatalf("UpdateLecture: %v", err)
	}
	if updated.Studied != 2 {
		t.Errorf("studied = %d, want 2", updated.Studied)
	}
	if updated.UniLecs != 2 || updated.Revised {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	revised := true
	updated, err = svc.UpdateLecture(ctx, nil, lecture.ID, LectureUpdate{Revised: &revised})
	if err != nil {
		t.Fatalf("UpdateLecture: %v", err)
	}
	if !updated.Revised {
		t.Error("revised flag not set")
	}
	if updated.Studied != 2 {
		t.Errorf("studied reset to %d", updated.Studied)
	}
}

func TestUpdateLectureMissing(t *testing.T) {
	svc, _ := newLectureService(t)

	uniLecs := 3
	_, err := svc.UpdateLecture(context.Background(), nil, 42, LectureUpdate{UniLecs: &uniLecs})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
