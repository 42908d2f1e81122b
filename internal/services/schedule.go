package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

const clockLayout = "15:04"

type ScheduleService interface {
	ListEventsForDay(ctx context.Context, tx *gorm.DB, day types.Date) ([]*types.CustomEvent, error)
	CreateEvent(ctx context.Context, tx *gorm.DB, title, startTime, endTime, color string) (*types.CustomEvent, error)
}

type scheduleService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo repos.CustomEventRepo
}

func NewScheduleService(db *gorm.DB, baseLog *logger.Logger, eventRepo repos.CustomEventRepo) ScheduleService {
	serviceLog := baseLog.With("service", "ScheduleService")
	return &scheduleService{db: db, log: serviceLog, eventRepo: eventRepo}
}

func (ss *scheduleService) ListEventsForDay(ctx context.Context, tx *gorm.DB, day types.Date) ([]*types.CustomEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = ss.db
	}
	events, err := ss.eventRepo.ListByDate(ctx, transaction, day)
	if err != nil {
		ss.log.Error("ListEventsForDay failed", "error", err, "day", day.String())
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (ss *scheduleService) CreateEvent(ctx context.Context, tx *gorm.DB, title, startTime, endTime, color string) (*types.CustomEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = ss.db
	}

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("event title is required: %w", ErrInvalid)
	}
	if _, err := time.Parse(clockLayout, startTime); err != nil {
		return nil, fmt.Errorf("start_time must be HH:MM: %w", ErrInvalid)
	}
	if _, err := time.Parse(clockLayout, endTime); err != nil {
		return nil, fmt.Errorf("end_time must be HH:MM: %w", ErrInvalid)
	}
	if color == "" {
		color = "purple"
	}

	event := &types.CustomEvent{
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		EventDate: types.Today(),
		Color:     color,
	}
	if _, err := ss.eventRepo.Create(ctx, transaction, []*types.CustomEvent{event}); err != nil {
		ss.log.Error("CreateEvent failed", "error", err, "title", title)
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}
