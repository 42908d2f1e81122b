package types

// DefaultPlayerID is seeded at startup so shot tagging always has a
// player to attach to.
const DefaultPlayerID uint = 1

type BasketballPlayer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (BasketballPlayer) TableName() string { return "basketball_player" }

// Stat types the box score understands. Anything else on a tag is
// kept but ignored by the aggregation.
const (
	StatFGAMade   = "fga_made"
	StatFGAMissed = "fga_missed"
	StatAssist    = "ast"
)

type VideoTag struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Time     float64 `gorm:"not null" json:"time"`
	PlayerID uint    `gorm:"not null;index" json:"player_id"`
	Category string  `gorm:"size:100" json:"category"`
	Action   string  `gorm:"size:100" json:"action"`
	StatType string  `gorm:"size:50" json:"stat_type"`
}

func (VideoTag) TableName() string { return "video_tag" }

// Shot positions are percentage coordinates on the court diagram.
// Shots are a separate log from tagged actions and never feed the box
// score.
type Shot struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	X        float64 `gorm:"not null" json:"x"`
	Y        float64 `gorm:"not null" json:"y"`
	Made     bool    `gorm:"not null" json:"made"`
	PlayerID uint    `gorm:"not null;index" json:"player_id"`
}

func (Shot) TableName() string { return "shot" }
