package types

type Mistake struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Topic       string `gorm:"size:200;not null" json:"topic"`
	Description string `gorm:"type:text" json:"description"`
	SubjectID   uint   `gorm:"not null;index" json:"subject_id"`
}

func (Mistake) TableName() string { return "mistake" }
