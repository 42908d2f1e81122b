package types

type Subject struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Lectures   []*Lecture   `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"lectures,omitempty"`
	Flashcards []*Flashcard `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"-"`
	Mistakes   []*Mistake   `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"-"`
}

func (Subject) TableName() string { return "subject" }
