package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	PlacementMin = 1
	PlacementMax = 12
)

type MatchResult struct {
	ID      int `json:"id" db:"id"`
	MatchID int `json:"match_id" db:"match_id"`
	TeamID  int `json:"team_id" db:"team_id"`

	// Placement is the team's finishing rank on this map, unique per match.
	Placement int `json:"placement" db:"placement"`
	Kills     int `json:"kills" db:"kills"`

	// Derived at write time from the scrim's point system.
	PlacementPoints int `json:"placement_points" db:"placement_points"`
	KillPoints      int `json:"kill_points" db:"kill_points"`
	TotalPoints     int `json:"total_points" db:"total_points"`

	// PlayerKills holds per-roster-slot kill counts for detailed scrims,
	// normalized from the stored JSON. Empty for non-detailed scrims.
	PlayerKills []int `json:"player_kills,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ValidPlacement reports whether p is a representable finishing rank.
func ValidPlacement(p int) bool {
	return p >= PlacementMin && p <= PlacementMax
}

// NormalizePlayerKills decodes the player_stats JSON column into an ordered
// per-slot kill slice of length slots. The legacy data stores the stats in
// three shapes: an object keyed by the string form of the slot index
// ({"0": 3, "1": "2"} — values sometimes stringified), a plain array, or
// either of those double-encoded as a JSON string. All shapes are normalized
// here; nothing downstream ever inspects the stored representation.
func NormalizePlayerKills(raw []byte, slots int) ([]int, error) {
	kills := make([]int, slots)
	if len(raw) == 0 {
		return kills, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return kills, nil
		}
		raw = []byte(asString)
	}

	var byIndex map[string]json.Number
	if err := json.Unmarshal(raw, &byIndex); err == nil {
		for key, value := range byIndex {
			slot, err := strconv.Atoi(key)
			if err != nil || slot < 0 || slot >= slots {
				continue
			}
			n, err := value.Int64()
			if err != nil {
				// Stringified numbers come through as e.g. "3".
				f, ferr := value.Float64()
				if ferr != nil {
					continue
				}
				n = int64(f)
			}
			if n < 0 {
				return nil, fmt.Errorf("negative kill count %d for player slot %d", n, slot)
			}
			kills[slot] = int(n)
		}
		return kills, nil
	}

	var asList []json.Number
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, fmt.Errorf("player_stats is neither an index map nor a list: %w", err)
	}
	for slot, value := range asList {
		if slot >= slots {
			break
		}
		n, err := value.Int64()
		if err != nil {
			continue
		}
		if n < 0 {
			return nil, fmt.Errorf("negative kill count %d for player slot %d", n, slot)
		}
		kills[slot] = int(n)
	}
	return kills, nil
}

// EncodePlayerKills marshals the normalized slice back into the string-keyed
// object form the results screens and the old clients expect. An empty slice
// yields nil so the column can be stored as SQL NULL.
func EncodePlayerKills(kills []int) ([]byte, error) {
	if len(kills) == 0 {
		return nil, nil
	}
	byIndex := make(map[string]int, len(kills))
	for slot, k := range kills {
		byIndex[strconv.Itoa(slot)] = k
	}
	return json.Marshal(byIndex)
}

// SumPlayerKills returns the total of all per-slot kill counts.
func SumPlayerKills(kills []int) int {
	sum := 0
	for _, k := range kills {
		sum += k
	}
	return sum
}
