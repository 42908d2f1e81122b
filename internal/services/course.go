package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type CourseService interface {
	ListCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	CreateCourse(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error)
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCourseService(db *gorm.DB, baseLog *logger.Logger, courseRepo repos.CourseRepo) CourseService {
	serviceLog := baseLog.With("service", "CourseService")
	return &courseService{db: db, log: serviceLog, courseRepo: courseRepo}
}

func (cs *courseService) ListCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}
	courses, err := cs.courseRepo.GetAll(ctx, transaction)
	if err != nil {
		cs.log.Error("ListCourses failed", "error", err)
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (cs *courseService) CreateCourse(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}

	if strings.TrimSpace(course.Title) == "" {
		return nil, fmt.Errorf("course title is required: %w", ErrInvalid)
	}
	if course.SessionsPerWeek <= 0 {
		course.SessionsPerWeek = 1
	}

	if _, err := cs.courseRepo.Create(ctx, transaction, []*types.Course{course}); err != nil {
		cs.log.Error("CreateCourse failed", "error", err, "title", course.Title)
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}
