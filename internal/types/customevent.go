package types

// StartTime and EndTime are wall-clock times in "HH:MM" form.
type CustomEvent struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:150;not null" json:"title"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	EventDate Date   `gorm:"not null;index" json:"event_date"`
	Color     string `gorm:"size:20;not null;default:purple" json:"color"`
}

func (CustomEvent) TableName() string { return "custom_event" }
