package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/studydeskhq/studydesk-backend/internal/handlers"
	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/middleware"
)

type RouterConfig struct {
	Log               *logger.Logger
	AllowOrigins      []string
	DashboardHandler  *handlers.DashboardHandler
	SubjectHandler    *handlers.SubjectHandler
	LectureHandler    *handlers.LectureHandler
	FlashcardHandler  *handlers.FlashcardHandler
	ExamHandler       *handlers.ExamHandler
	MistakeHandler    *handlers.MistakeHandler
	PomodoroHandler   *handlers.PomodoroHandler
	TimerHandler      *handlers.TimerHandler
	CourseHandler     *handlers.CourseHandler
	ScheduleHandler   *handlers.ScheduleHandler
	GymHandler        *handlers.GymHandler
	BasketballHandler *handlers.BasketballHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestLog(cfg.Log))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Dashboard
		api.GET("/dashboard_metrics", cfg.DashboardHandler.GetDashboardMetrics)
		api.GET("/reverse_schedule", cfg.DashboardHandler.GetReverseSchedule)
		// Subjects & lectures
		api.GET("/subjects", cfg.SubjectHandler.ListSubjects)
		api.POST("/subjects", cfg.SubjectHandler.CreateSubject)
		api.DELETE("/subjects/:id", cfg.SubjectHandler.DeleteSubject)
		api.POST("/subjects/:id/lectures", cfg.LectureHandler.AddLecture)
		api.PUT("/lectures/:id", cfg.LectureHandler.UpdateLecture)
		// Flashcards
		api.GET("/subjects/:id/lectures/:lectureNumber/flashcards", cfg.FlashcardHandler.ListFlashcards)
		api.POST("/flashcards", cfg.FlashcardHandler.CreateFlashcard)
		// Exams & mistakes
		api.GET("/exams", cfg.ExamHandler.ListExams)
		api.POST("/exams", cfg.ExamHandler.CreateExam)
		api.POST("/mistakes", cfg.MistakeHandler.CreateMistake)
		// Pomodoro
		api.POST("/pomodoro", cfg.PomodoroHandler.LogPomodoro)
		api.GET("/timer", cfg.TimerHandler.GetState)
		api.POST("/timer/start", cfg.TimerHandler.Start)
		api.POST("/timer/stop", cfg.TimerHandler.Stop)
		api.POST("/timer/reset", cfg.TimerHandler.Reset)
		api.POST("/timer/skip", cfg.TimerHandler.Skip)
		// Courses & schedule
		api.GET("/courses", cfg.CourseHandler.ListCourses)
		api.POST("/courses", cfg.CourseHandler.CreateCourse)
		api.GET("/schedule", cfg.ScheduleHandler.ListTodaySchedule)
		api.POST("/schedule", cfg.ScheduleHandler.CreateEvent)
		// Gym
		api.GET("/gym/exercises", cfg.GymHandler.ListExercises)
		api.POST("/gym/exercises", cfg.GymHandler.CreateExercise)
		api.GET("/gym/prs", cfg.GymHandler.ListPRs)
		api.POST("/gym/prs", cfg.GymHandler.CreatePR)
		// Basketball
		api.GET("/basketball/data", cfg.BasketballHandler.GetData)
		api.POST("/basketball/players", cfg.BasketballHandler.CreatePlayer)
		api.POST("/basketball/tags", cfg.BasketballHandler.CreateTag)
		api.POST("/basketball/shots", cfg.BasketballHandler.CreateShot)
	}

	return router
}
