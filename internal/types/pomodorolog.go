package types

import "time"

// PomodoroLog rows are append-only: once written they are never
// updated or deleted. LectureID stores a lecture_number, not a row id
// (see Flashcard).
type PomodoroLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"`
	SubjectID *uint     `gorm:"index" json:"subject_id"`
	LectureID *int      `json:"lecture_id"`
}

func (PomodoroLog) TableName() string { return "pomodoro_log" }
