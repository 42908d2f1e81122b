package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

func newSubjectService(t *testing.T) (SubjectService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewSubjectService(db, log,
		repos.NewSubjectRepo(db, log),
		repos.NewLectureRepo(db, log),
		repos.NewFlashcardRepo(db, log),
		repos.NewMistakeRepo(db, log),
	)
	return svc, db
}

func TestCreateSubjectTrimsName(t *testing.T) {
	svc, _ := newSubjectService(t)

	subject, err := svc.CreateSubject(context.Background(), nil, "  Anatomy  ")
	if err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}
	if subject.Name != "Anatomy" {
		t.Errorf("name = %q, want %q", subject.Name, "Anatomy")
	}
}

func TestCreateSubjectEmptyName(t *testing.T) {
	svc, _ := newSubjectService(t)

	_, err := svc.CreateSubject(context.Background(), nil, "   ")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestCreateSubjectDuplicateName(t *testing.T) {
	svc, _ := newSubjectService(t)
	ctx := context.Background()

	if _, err := svc.CreateSubject(ctx, nil, "Anatomy"); err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}
	_, err := svc.CreateSubject(ctx, nil, "Anatomy")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestListSubjectsOrdersLectures(t *testing.T) {
	svc, db := newSubjectService(t)
	ctx := context.Background()

	subject := types.Subject{Name: "Anatomy"}
	mustCreate(t, db, &subject)
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 2})
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 1})

	subjects, err := svc.ListSubjects(ctx, nil)
	if err != nil {
		t.Fatalf("ListSubjects: %v", err)
	}
	if len(subjects) != 1 {
		t.Fatalf("len(subjects) = %d, want 1", len(subjects))
	}
	lectures := subjects[0].Lectures
	if len(lectures) != 2 {
		t.Fatalf("len(lectures) = %d, want 2", len(lectures))
	}
	if lectures[0].LectureNumber != 1 || lectures[1].LectureNumber != 2 {
		t.Errorf("lectures out of order: %d, %d", lectures[0].LectureNumber, lectures[1].LectureNumber)
	}
}

func TestDeleteSubjectCascades(t *testing.T) {
	svc, db := newSubjectService(t)
	ctx := context.Background()

	subject := types.Subject{Name: "Anatomy"}
	keep := types.Subject{Name: "Physiology"}
	mustCreate(t, db, &subject)
	mustCreate(t, db, &keep)
	mustCreate(t, db, &types.Lecture{SubjectID: subject.ID, LectureNumber: 1})
	mustCreate(t, db, &types.Flashcard{SubjectID: subject.ID, LectureID: 1, Front: "q", Back: "a"})
	mustCreate(t, db, &types.Mistake{Topic: "t", SubjectID: subject.ID})
	mustCreate(t, db, &types.Lecture{SubjectID: keep.ID, LectureNumber: 1})

	if err := svc.DeleteSubject(ctx, subject.ID); err != nil {
		t.Fatalf("DeleteSubject: %v", err)
	}

	counts := map[string]interface{}{
		"lecture":   &types.Lecture{},
		"flashcard": &types.Flashcard{},
		"mistake":   &types.Mistake{},
	}
	for name, model := range counts {
		var n int64
		if err := db.Model(model).Where("subject_id = ?", subject.ID).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 0 {
			t.Errorf("%s rows left after cascade: %d", name, n)
		}
	}

	var keptLectures int64
	if err := db.Model(&types.Lecture{}).Where("subject_id = ?", keep.ID).Count(&keptLectures).Error; err != nil {
		t.Fatalf("count kept lectures: %v", err)
	}
	if keptLectures != 1 {
		t.Errorf("other subject's lectures = %d, want 1", keptLectures)
	}
}

func TestDeleteSubjectMissing(t *testing.T) {
	svc, _ := newSubjectService(t)

	err := svc.DeleteSubject(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
