package types

type Course struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:150;not null" json:"title"`
	Platform        string `gorm:"size:100" json:"platform"`
	Category        string `gorm:"size:100" json:"category"`
	TotalUnits      int    `gorm:"not null;default:0" json:"total_units"`
	CompletedUnits  int    `gorm:"not null;default:0" json:"completed_units"`
	TargetDate      *Date  `json:"target_date"`
	SessionsPerWeek int    `gorm:"not null;default:1" json:"sessions_per_week"`
}

func (Course) TableName() string { return "course" }
