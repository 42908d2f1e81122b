package main

import (
	"context"
	"fmt"
	"os"

	"github.com/studydeskhq/studydesk-backend/internal/config"
	"github.com/studydeskhq/studydesk-backend/internal/db"
	"github.com/studydeskhq/studydesk-backend/internal/handlers"
	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/server"
	"github.com/studydeskhq/studydesk-backend/internal/services"
	"github.com/studydeskhq/studydesk-backend/internal/timer"
	"github.com/studydeskhq/studydesk-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration from main...")
	configPath := utils.GetEnv("CONFIG_PATH", "config.yaml", log)
	cfg, err := config.Load(configPath, log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Store
	store, err := db.NewStoreService(cfg.Database, log)
	if err != nil {
		log.Error("Store init failed", "error", err)
		os.Exit(1)
	}
	if err := store.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	if err := store.SeedDefaults(context.Background()); err != nil {
		log.Warn("Seeding defaults failed", "error", err)
	}
	theDB := store.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	subjectRepo := repos.NewSubjectRepo(theDB, log)
	lectureRepo := repos.NewLectureRepo(theDB, log)
	flashcardRepo := repos.NewFlashcardRepo(theDB, log)
	examRepo := repos.NewExamRepo(theDB, log)
	mistakeRepo := repos.NewMistakeRepo(theDB, log)
	pomodoroLogRepo := repos.NewPomodoroLogRepo(theDB, log)
	courseRepo := repos.NewCourseRepo(theDB, log)
	customEventRepo := repos.NewCustomEventRepo(theDB, log)
	exerciseRepo := repos.NewExerciseRepo(theDB, log)
	prRepo := repos.NewPRRepo(theDB, log)
	playerRepo := repos.NewBasketballPlayerRepo(theDB, log)
	videoTagRepo := repos.NewVideoTagRepo(theDB, log)
	shotRepo := repos.NewShotRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	subjectService := services.NewSubjectService(theDB, log, subjectRepo, lectureRepo, flashcardRepo, mistakeRepo)
	lectureService := services.NewLectureService(theDB, log, subjectRepo, lectureRepo)
	flashcardService := services.NewFlashcardService(theDB, log, subjectRepo, flashcardRepo)
	examService := services.NewExamService(theDB, log, examRepo)
	mistakeService := services.NewMistakeService(theDB, log, subjectRepo, mistakeRepo)
	pomodoroService := services.NewPomodoroService(theDB, log, pomodoroLogRepo, lectureRepo)
	metricsService := services.NewMetricsService(theDB, log, pomodoroLogRepo, examRepo, mistakeRepo, lectureRepo)
	courseService := services.NewCourseService(theDB, log, courseRepo)
	scheduleService := services.NewScheduleService(theDB, log, customEventRepo)
	gymService := services.NewGymService(theDB, log, exerciseRepo, prRepo)
	basketballService := services.NewBasketballService(theDB, log, playerRepo, videoTagRepo, shotRepo)

	// Timer
	log.Info("Setting up timer controller from main...")
	timerController := timer.New(timer.Durations{
		Pomodoro:   cfg.Timer.PomodoroSeconds,
		ShortBreak: cfg.Timer.ShortBreakSeconds,
		LongBreak:  cfg.Timer.LongBreakSeconds,
	}, log, func(durationSeconds int, subjectID *uint, lectureNumber *int) {
		if _, err := pomodoroService.LogSession(context.Background(), durationSeconds, subjectID, lectureNumber); err != nil {
			log.Warn("Could not log completed pomodoro", "error", err)
		}
	})

	// Handlers
	log.Info("Setting up handlers from main...")
	dashboardHandler := handlers.NewDashboardHandler(log, metricsService)
	subjectHandler := handlers.NewSubjectHandler(log, subjectService)
	lectureHandler := handlers.NewLectureHandler(log, lectureService)
	flashcardHandler := handlers.NewFlashcardHandler(log, flashcardService)
	examHandler := handlers.NewExamHandler(log, examService)
	mistakeHandler := handlers.NewMistakeHandler(log, mistakeService)
	pomodoroHandler := handlers.NewPomodoroHandler(log, pomodoroService)
	timerHandler := handlers.NewTimerHandler(log, timerController)
	courseHandler := handlers.NewCourseHandler(log, courseService)
	scheduleHandler := handlers.NewScheduleHandler(log, scheduleService)
	gymHandler := handlers.NewGymHandler(log, gymService)
	basketballHandler := handlers.NewBasketballHandler(log, basketballService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		AllowOrigins:      cfg.CORS.AllowOrigins,
		DashboardHandler:  dashboardHandler,
		SubjectHandler:    subjectHandler,
		LectureHandler:    lectureHandler,
		FlashcardHandler:  flashcardHandler,
		ExamHandler:       examHandler,
		MistakeHandler:    mistakeHandler,
		PomodoroHandler:   pomodoroHandler,
		TimerHandler:      timerHandler,
		CourseHandler:     courseHandler,
		ScheduleHandler:   scheduleHandler,
		GymHandler:        gymHandler,
		BasketballHandler: basketballHandler,
	})

	fmt.Printf("Server listening on :%s\n", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
