package types

// LectureID stores the lecture_number within the subject, not the
// lecture row id. The pair (subject_id, lecture_id) is a logical
// lecture reference and is intentionally not a foreign key.
type Flashcard struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SubjectID uint   `gorm:"not null;index" json:"subject_id"`
	LectureID int    `gorm:"not null" json:"lecture_id"`
	Front     string `gorm:"type:text;not null" json:"front"`
	Back      string `gorm:"type:text;not null" json:"back"`
}

func (Flashcard) TableName() string { return "flashcard" }
