package scoring

import "github.com/Adfay-Inc/Puntus/models"

// MapWinner is the champion of one played map slot.
type MapWinner struct {
	MapName  string      `json:"map_name"`
	MapIndex int         `json:"map_index"`
	Team     models.Team `json:"team"`
	Kills    int         `json:"kills"`
	Points   int         `json:"points"`
}

// MapWinners returns, in rotation order, the team that placed first on each
// map slot. Slots without a first-place result (not played yet) are simply
// omitted.
func MapWinners(maps []string, results []Result, teams []models.Team, ps models.PointSystem) []MapWinner {
	teamsByID := make(map[int]models.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}

	winners := make([]MapWinner, 0, len(maps))
	for i, mapName := range maps {
		for _, result := range results {
			if result.Placement != 1 {
				continue
			}
			slot, ok := resolveMapSlot(maps, result.MapName, result.MapIndex)
			if !ok || slot != i {
				continue
			}
			team, ok := teamsByID[result.TeamID]
			if !ok {
				continue
			}
			placement := result.Placement
			breakdown, err := ResolvePoints(&placement, result.Kills, ps)
			if err != nil {
				continue
			}
			winners = append(winners, MapWinner{
				MapName:  mapName,
				MapIndex: i,
				Team:     team,
				Kills:    result.Kills,
				Points:   breakdown.TotalPoints,
			})
			break
		}
	}
	return winners
}
