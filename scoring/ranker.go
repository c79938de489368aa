package scoring

import "sort"

// RankedTeam is a team's accumulated statistics plus its leaderboard position.
type RankedTeam struct {
	TeamStats
	Position int `json:"position"`
}

// Rank orders team statistics into the leaderboard. Primary key is total
// points descending; ties are broken by total kills descending, then team id
// ascending, so equal inputs always produce the same order. Positions are
// the contiguous integers 1..N.
func Rank(stats map[int]*TeamStats) []RankedTeam {
	ranked := make([]RankedTeam, 0, len(stats))
	for _, teamStats := range stats {
		ranked = append(ranked, RankedTeam{TeamStats: *teamStats})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		if ranked[i].TotalKills != ranked[j].TotalKills {
			return ranked[i].TotalKills > ranked[j].TotalKills
		}
		return ranked[i].Team.ID < ranked[j].Team.ID
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// TopN returns the first n entries of the leaderboard. A short leaderboard
// is returned as-is, without padding.
func TopN(ranked []RankedTeam, n int) []RankedTeam {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
