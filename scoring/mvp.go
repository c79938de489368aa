package scoring

import (
	"math"

	"github.com/Adfay-Inc/Puntus/models"
)

// PlayerMVP is the single highest-fragging player across the whole scrim.
type PlayerMVP struct {
	Name         string      `json:"name"`
	PlayerSlot   int         `json:"player_slot"`
	TotalKills   int         `json:"total_kills"`
	TotalPoints  int         `json:"total_points"`
	GamesPlayed  int         `json:"games_played"`
	AverageKills float64     `json:"average_kills"`
	Team         models.Team `json:"team"`
	TeamPosition int         `json:"team_position"`
}

// GlobalMVP finds the player with the highest kill total across all results.
// Only meaningful for detailed scrims; the caller gates on the scrim
// settings. Ties keep the first maximum found, scanning teams in list order
// and roster slots in ascending order. Returns nil when no player has a
// recorded kill.
func GlobalMVP(teams []models.Team, results []Result, ps models.PointSystem, ranked []RankedTeam) *PlayerMVP {
	positions := make(map[int]int, len(ranked))
	for _, entry := range ranked {
		positions[entry.Team.ID] = entry.Position
	}

	var mvp *PlayerMVP
	for _, team := range teams {
		for slot := range team.Players {
			totalKills := 0
			gamesPlayed := 0
			for _, result := range results {
				if result.TeamID != team.ID || slot >= len(result.PlayerKills) {
					continue
				}
				kills := result.PlayerKills[slot]
				totalKills += kills
				if kills > 0 {
					gamesPlayed++
				}
			}

			if mvp != nil && totalKills <= mvp.TotalKills {
				continue
			}
			if totalKills == 0 {
				continue
			}

			averageKills := 0.0
			if gamesPlayed > 0 {
				averageKills = math.Round(float64(totalKills)/float64(gamesPlayed)*10) / 10
			}
			mvp = &PlayerMVP{
				Name:         team.PlayerName(slot),
				PlayerSlot:   slot,
				TotalKills:   totalKills,
				TotalPoints:  totalKills * ps.KillPoints,
				GamesPlayed:  gamesPlayed,
				AverageKills: averageKills,
				Team:         team,
				TeamPosition: positions[team.ID],
			}
		}
	}
	return mvp
}
