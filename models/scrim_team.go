package models

import "time"

// ScrimTeamStatus represents the state of a team's registration in a scrim.
type ScrimTeamStatus string

const (
	ScrimTeamRegistered   ScrimTeamStatus = "registered"
	ScrimTeamConfirmed    ScrimTeamStatus = "confirmed"
	ScrimTeamDisqualified ScrimTeamStatus = "disqualified"
	ScrimTeamWithdrew     ScrimTeamStatus = "withdrew"
)

// ScrimTeam is the registration row joining a team to its scrim. A team
// belongs to exactly one scrim; removing the registration removes the team.
type ScrimTeam struct {
	ID           int             `json:"id" db:"id"`
	ScrimID      int             `json:"scrim_id" db:"scrim_id"`
	TeamID       int             `json:"team_id" db:"team_id"`
	Status       ScrimTeamStatus `json:"status" db:"status"`
	RegisteredAt time.Time       `json:"registered_at" db:"registered_at"`
}
