package scoring

import (
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Run("orders by total points descending with positions", func(t *testing.T) {
		stats := map[int]*TeamStats{
			1: {Team: models.Team{ID: 1, Name: "Alpha"}, TotalPoints: 17},
			2: {Team: models.Team{ID: 2, Name: "Bravo"}, TotalPoints: 16},
			3: {Team: models.Team{ID: 3, Name: "Charlie"}, TotalPoints: 30},
		}

		ranked := Rank(stats)
		require.Len(t, ranked, 3)
		assert.Equal(t, 3, ranked[0].Team.ID)
		assert.Equal(t, 1, ranked[0].Position)
		assert.Equal(t, 1, ranked[1].Team.ID)
		assert.Equal(t, 2, ranked[1].Position)
		assert.Equal(t, 2, ranked[2].Team.ID)
		assert.Equal(t, 3, ranked[2].Position)
	})

	t.Run("ties broken by kills then team id", func(t *testing.T) {
		stats := map[int]*TeamStats{
			5: {Team: models.Team{ID: 5}, TotalPoints: 20, TotalKills: 4},
			2: {Team: models.Team{ID: 2}, TotalPoints: 20, TotalKills: 9},
			7: {Team: models.Team{ID: 7}, TotalPoints: 20, TotalKills: 4},
		}

		ranked := Rank(stats)
		require.Len(t, ranked, 3)
		assert.Equal(t, 2, ranked[0].Team.ID)
		assert.Equal(t, 5, ranked[1].Team.ID)
		assert.Equal(t, 7, ranked[2].Team.ID)
	})

	t.Run("positions are contiguous for any input", func(t *testing.T) {
		stats := make(map[int]*TeamStats)
		for id := 1; id <= 12; id++ {
			stats[id] = &TeamStats{Team: models.Team{ID: id}, TotalPoints: id % 4}
		}

		ranked := Rank(stats)
		require.Len(t, ranked, 12)
		for i, entry := range ranked {
			assert.Equal(t, i+1, entry.Position)
		}
	})

	t.Run("empty input yields empty leaderboard", func(t *testing.T) {
		assert.Empty(t, Rank(map[int]*TeamStats{}))
	})
}

func TestTopN(t *testing.T) {
	ranked := []RankedTeam{
		{TeamStats: TeamStats{Team: models.Team{ID: 1}}, Position: 1},
		{TeamStats: TeamStats{Team: models.Team{ID: 2}}, Position: 2},
		{TeamStats: TeamStats{Team: models.Team{ID: 3}}, Position: 3},
	}

	assert.Len(t, TopN(ranked, 2), 2)
	assert.Len(t, TopN(ranked, 3), 3)
	assert.Len(t, TopN(ranked, 10), 3, "short leaderboard returned without padding")
	assert.Empty(t, TopN(ranked, 0))
	assert.Empty(t, TopN(nil, 3))
}
