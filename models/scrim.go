package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ScrimStatus represents the scrim lifecycle states, matching the ENUM in the DB.
type ScrimStatus string

const (
	ScrimStatusPending   ScrimStatus = "pending"
	ScrimStatusActive    ScrimStatus = "active"
	ScrimStatusCompleted ScrimStatus = "completed"
	ScrimStatusCancelled ScrimStatus = "cancelled"
)

const (
	ScrimMinTeams = 2
	ScrimMaxTeams = 12
)

// PlacementTable maps each finishing position to its point value. Ordinals
// left at zero simply score nothing, which covers scrims that configure only
// the top placements.
type PlacementTable struct {
	First    int `json:"first"`
	Second   int `json:"second"`
	Third    int `json:"third"`
	Fourth   int `json:"fourth"`
	Fifth    int `json:"fifth"`
	Sixth    int `json:"sixth"`
	Seventh  int `json:"seventh"`
	Eighth   int `json:"eighth"`
	Ninth    int `json:"ninth"`
	Tenth    int `json:"tenth"`
	Eleventh int `json:"eleventh"`
	Twelfth  int `json:"twelfth"`
}

// PointSystem is the scoring configuration of a scrim: placement points plus
// a flat per-kill rate.
type PointSystem struct {
	Placement  PlacementTable `json:"placement"`
	KillPoints int            `json:"killPoints"`
}

// DefaultPointSystem returns the canonical default scoring table. Every
// defaulting site must go through this constructor so the fallback values
// cannot drift between call sites.
func DefaultPointSystem() PointSystem {
	return PointSystem{
		Placement: PlacementTable{
			First:  12,
			Second: 6,
			Third:  4,
			Fourth: 2,
			Fifth:  1,
		},
		KillPoints: 1,
	}
}

// ScrimSettings is the typed form of the settings JSON column.
type ScrimSettings struct {
	// IsDetailed gates per-player kill tracking and the MVP computation.
	IsDetailed       bool    `json:"isDetailed"`
	IsPrivate        bool    `json:"isPrivate"`
	Password         *string `json:"password,omitempty"`
	DiscordChannel   *string `json:"discordChannel,omitempty"`
	Rules            *string `json:"rules,omitempty"`
	MaxPlayersPerTeam int    `json:"maxPlayersPerTeam"`
	AllowSubstitutes bool    `json:"allowSubstitutes"`
}

// DefaultScrimSettings mirrors the defaults applied when a scrim is created
// without an explicit settings payload.
func DefaultScrimSettings() ScrimSettings {
	return ScrimSettings{
		MaxPlayersPerTeam: TeamMinPlayers,
		AllowSubstitutes:  true,
	}
}

type Scrim struct {
	ID        int         `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	CreatorID int         `json:"creator_id" db:"creator_id"`
	MinTeams  int         `json:"min_teams" db:"min_teams"`
	MaxTeams  int         `json:"max_teams" db:"max_teams"`
	Status    ScrimStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`

	// Maps is the ordered map rotation; the position in this list combined
	// with the map name identifies a map slot (repeated names stay distinct).
	Maps []string `json:"maps" db:"-"`

	PointSystem PointSystem   `json:"point_system" db:"-"`
	Settings    ScrimSettings `json:"settings" db:"-"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}

// ParsePointSystem decodes the point_system JSON column, applying the
// canonical defaults for anything the stored value leaves out. A missing
// kill rate defaults to 1, matching how results were always scored.
func ParsePointSystem(raw []byte) (PointSystem, error) {
	if len(raw) == 0 {
		return DefaultPointSystem(), nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var stored struct {
		Placement *PlacementTable `json:"placement"`
		KillPoints *int           `json:"killPoints"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return PointSystem{}, fmt.Errorf("invalid point_system JSON: %w", err)
	}

	ps := DefaultPointSystem()
	if stored.Placement != nil {
		ps.Placement = *stored.Placement
	}
	if stored.KillPoints != nil {
		ps.KillPoints = *stored.KillPoints
	}
	return ps, nil
}

// ParseScrimSettings decodes the settings JSON column with defaults applied.
func ParseScrimSettings(raw []byte) (ScrimSettings, error) {
	settings := DefaultScrimSettings()
	if len(raw) == 0 {
		return settings, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return ScrimSettings{}, fmt.Errorf("invalid settings JSON: %w", err)
	}
	if settings.MaxPlayersPerTeam <= 0 {
		settings.MaxPlayersPerTeam = TeamMinPlayers
	}
	return settings, nil
}
