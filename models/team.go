package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// TeamMinPlayers is the number of mandatory starters in a roster.
	TeamMinPlayers = 4
	// TeamMaxPlayers is starters plus substitutes.
	TeamMaxPlayers = 6
	// TeamTagMaxLen is the maximum length of a team tag.
	TeamTagMaxLen = 4
)

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Tag       string    `json:"tag" db:"tag"`
	CreatorID int       `json:"creator_id" db:"creator_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Players is the ordered roster: slots 0..3 are starters, 4..5 substitutes.
	// Player slot index is the key used by MatchResult.PlayerKills.
	Players []string `json:"players" db:"-"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`

	// ScrimID is populated when the team is loaded through its scrim registration.
	ScrimID *int `json:"scrim_id,omitempty" db:"-"`
}

// DecodePlayers fills Players from the raw JSON column value. The legacy
// data contains either a plain array of names or an array of objects with a
// "name" field; both forms are normalized into the ordered name list here so
// no caller has to branch on the stored representation.
func DecodePlayers(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	// Some rows were double-encoded by the old ingestion path.
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return names, nil
	}

	var objects []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("players column contains neither a name list nor an object list: %w", err)
	}
	names = make([]string, len(objects))
	for i, o := range objects {
		names[i] = o.Name
	}
	return names, nil
}

// PlayerName returns the display name for a roster slot, falling back to the
// positional placeholder used by the results screens when the name is blank.
func (t *Team) PlayerName(slot int) string {
	if slot >= 0 && slot < len(t.Players) && t.Players[slot] != "" {
		return t.Players[slot]
	}
	return fmt.Sprintf("Jugador %d", slot+1)
}
