package types

import "gorm.io/datatypes"

type Exercise struct {
	ID    uint           `gorm:"primaryKey" json:"id"`
	Name  string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Group string         `gorm:"column:muscle_group;size:50" json:"group"`
	Cues  string         `gorm:"size:255" json:"cues"`
	Tags  datatypes.JSON `json:"tags"`
	PRs   []*PR          `gorm:"constraint:OnDelete:CASCADE;foreignKey:ExerciseID;references:ID" json:"-"`
}

func (Exercise) TableName() string { return "exercise" }
