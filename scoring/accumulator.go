package scoring

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Adfay-Inc/Puntus/models"
)

// ErrUnknownTeam is returned when a result references a team that is not in
// the supplied team list. This indicates inconsistent input data and aborts
// the whole aggregation rather than producing a partial leaderboard.
var ErrUnknownTeam = errors.New("result references a team not registered in the scrim")

// Result is one flattened per-team, per-match row as fed into the engine.
// MapIndex is the zero-based position in the scrim map rotation, derived
// from the match game number by the caller.
type Result struct {
	TeamID      int
	MapName     string
	MapIndex    int
	Placement   int
	Kills       int
	PlayerKills []int
}

// MapSlotResult is a team's scored outcome on one map slot. Placement is nil
// until a result for the slot has been recorded.
type MapSlotResult struct {
	MapName         string `json:"map_name"`
	MapIndex        int    `json:"map_index"`
	Placement       *int   `json:"placement"`
	Kills           int    `json:"kills"`
	PlacementPoints int    `json:"placement_points"`
	KillPoints      int    `json:"kill_points"`
	TotalPoints     int    `json:"total_points"`
}

// TeamStats is the accumulated scrim-wide statistics for one team.
type TeamStats struct {
	Team models.Team `json:"team"`

	// MapResults has one entry per map slot in rotation order, populated or not.
	MapResults []MapSlotResult `json:"map_results"`

	TotalPlacementPoints int `json:"total_placement_points"`
	TotalKillPoints      int `json:"total_kill_points"`
	TotalPoints          int `json:"total_points"`
	TotalKills           int `json:"total_kills"`
	Wins                 int `json:"wins"`
	Top3Finishes         int `json:"top3_finishes"`
	GamesPlayed          int `json:"games_played"`
}

// Engine runs the aggregation pipeline. It holds no state between calls;
// the logger is only used to report dropped result rows.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// AccumulateTeamStats folds the full result set into per-team statistics.
//
// The fold is order-independent and idempotent: each result lands in its map
// slot, a second result for the same slot overwrites the first (corrections),
// and the team totals are computed fresh from the populated slots at the end.
// Running it twice on the same inputs yields identical output.
//
// Malformed rows are handled per the aggregation contract: a result with an
// out-of-range placement or an unmatchable map slot is dropped with a log
// line so the remaining teams still rank; a result for an unknown team is a
// hard error.
func (e *Engine) AccumulateTeamStats(teams []models.Team, maps []string, results []Result, ps models.PointSystem) (map[int]*TeamStats, error) {
	stats := make(map[int]*TeamStats, len(teams))
	for _, team := range teams {
		slots := make([]MapSlotResult, len(maps))
		for i, mapName := range maps {
			slots[i] = MapSlotResult{MapName: mapName, MapIndex: i}
		}
		stats[team.ID] = &TeamStats{Team: team, MapResults: slots}
	}

	for _, result := range results {
		teamStats, ok := stats[result.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: team %d (map %q)", ErrUnknownTeam, result.TeamID, result.MapName)
		}

		slot, ok := resolveMapSlot(maps, result.MapName, result.MapIndex)
		if !ok {
			e.logger.Warn("dropping result with unmatchable map slot",
				slog.Int("team_id", result.TeamID),
				slog.String("map", result.MapName),
				slog.Int("map_index", result.MapIndex),
			)
			continue
		}

		placement := result.Placement
		breakdown, err := ResolvePoints(&placement, result.Kills, ps)
		if err != nil {
			e.logger.Warn("dropping invalid result",
				slog.Int("team_id", result.TeamID),
				slog.String("map", result.MapName),
				slog.Any("error", err),
			)
			continue
		}

		// Overwrite, never add: the slot holds the latest state of this
		// (team, map slot) pair even when the result set contains edits.
		teamStats.MapResults[slot] = MapSlotResult{
			MapName:         maps[slot],
			MapIndex:        slot,
			Placement:       &placement,
			Kills:           result.Kills,
			PlacementPoints: breakdown.PlacementPoints,
			KillPoints:      breakdown.KillPoints,
			TotalPoints:     breakdown.TotalPoints,
		}
	}

	for _, teamStats := range stats {
		for _, slot := range teamStats.MapResults {
			if slot.Placement == nil {
				continue
			}
			teamStats.TotalPlacementPoints += slot.PlacementPoints
			teamStats.TotalKillPoints += slot.KillPoints
			teamStats.TotalPoints += slot.TotalPoints
			teamStats.TotalKills += slot.Kills
			teamStats.GamesPlayed++
			if *slot.Placement == 1 {
				teamStats.Wins++
			}
			if *slot.Placement <= 3 {
				teamStats.Top3Finishes++
			}
		}
	}

	return stats, nil
}

// resolveMapSlot matches a result to its map slot. The primary key is the
// zero-based index derived from the match game number; when the index does
// not line up with the rotation (stale data after a map list edit), a map
// name that occurs exactly once in the rotation still disambiguates the slot.
func resolveMapSlot(maps []string, mapName string, mapIndex int) (int, bool) {
	if mapIndex >= 0 && mapIndex < len(maps) && maps[mapIndex] == mapName {
		return mapIndex, true
	}

	found := -1
	for i, name := range maps {
		if name != mapName {
			continue
		}
		if found >= 0 {
			return 0, false // repeated name, cannot disambiguate
		}
		found = i
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}
