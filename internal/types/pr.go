package types

type PR struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ExerciseID uint    `gorm:"not null;index" json:"exercise_id"`
	Weight     float64 `gorm:"not null" json:"weight"`
	Reps       int     `gorm:"not null" json:"reps"`
	Date       Date    `gorm:"not null" json:"date"`
}

func (PR) TableName() string { return "pr" }
