package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studydeskhq/studydesk-backend/internal/config"
	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

type StoreService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoreService(cfg config.Database, log *logger.Logger) (*StoreService, error) {
	serviceLog := log.With("service", "StoreService")

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	serviceLog.Info("Connecting to database...", "driver", cfg.Driver)
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &StoreService{db: gormDB, log: serviceLog}, nil
}

func (s *StoreService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.Subject{},
		&types.Lecture{},
		&types.Flashcard{},
		&types.Exam{},
		&types.Mistake{},
		&types.PomodoroLog{},
		&types.Course{},
		&types.CustomEvent{},
		&types.Exercise{},
		&types.PR{},
		&types.BasketballPlayer{},
		&types.VideoTag{},
		&types.Shot{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

// SeedDefaults creates the default basketball player once at startup so
// shot tagging can always fall back to player 1.
func (s *StoreService) SeedDefaults(ctx context.Context) error {
	player := &types.BasketballPlayer{ID: types.DefaultPlayerID, Name: "Player 1"}
	if err := s.db.WithContext(ctx).
		Where("id = ?", types.DefaultPlayerID).
		FirstOrCreate(player).Error; err != nil {
		s.log.Error("Failed to seed default basketball player", "error", err)
		return fmt.Errorf("seed default player: %w", err)
	}
	return nil
}

func (s *StoreService) DB() *gorm.DB {
	return s.db
}
