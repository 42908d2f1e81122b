package types

type Lecture struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SubjectID     uint `gorm:"not null;index" json:"subject_id"`
	LectureNumber int  `gorm:"not null" json:"lecture_number"`
	UniLecs       int  `gorm:"not null;default:1" json:"uni_lecs"`
	Studied       int  `gorm:"not null;default:0" json:"studied"`
	Revised       bool `gorm:"not null;default:false" json:"revised"`
	TotalTime     int  `gorm:"not null;default:0" json:"total_time"`
}

func (Lecture) TableName() string { return "lecture" }
