package models

import "time"

type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

type Match struct {
	ID      int    `json:"id" db:"id"`
	ScrimID int    `json:"scrim_id" db:"scrim_id"`
	MapName string `json:"map_name" db:"map_name"`
	// GameNumber is 1-based; GameNumber-1 is the index into the scrim map
	// rotation and identifies the map slot for every result of this match.
	GameNumber int         `json:"game_number" db:"game_number"`
	Status     MatchStatus `json:"status" db:"status"`
	StartTime  *time.Time  `json:"start_time,omitempty" db:"start_time"`
	EndTime    *time.Time  `json:"end_time,omitempty" db:"end_time"`
	RoomID     *string     `json:"room_id,omitempty" db:"room_id"`
	RoomPass   *string     `json:"room_password,omitempty" db:"room_password"`
	Notes      *string     `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// MapSlot returns the zero-based map rotation index this match belongs to.
func (m *Match) MapSlot() int {
	if m.GameNumber < 1 {
		return 0
	}
	return m.GameNumber - 1
}
