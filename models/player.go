package models

import "encoding/json"

// Player is a single scoreboard row. Names are case-sensitive and unique.
type Player struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	PlayerName string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Score      int    `gorm:"not null;default:0"`
}

// MaxPlayerNameLength matches the player_name column width, in characters.
const MaxPlayerNameLength = 100

func (Player) TableName() string {
	return "players"
}

// RankedScore is one scoreboard line. On the wire it is the pair [name, score].
type RankedScore struct {
	Name  string
	Score int
}

func (r RankedScore) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{r.Name, r.Score})
}
