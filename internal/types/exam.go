package types

type Exam struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Date Date   `gorm:"not null" json:"date"`
}

func (Exam) TableName() string { return "exam" }
