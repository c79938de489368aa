package scoring

import (
	"log/slog"
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeams() []models.Team {
	return []models.Team{
		{ID: 1, Name: "Alpha", Tag: "ALPH", Players: []string{"a1", "a2", "a3", "a4"}},
		{ID: 2, Name: "Bravo", Tag: "BRVO", Players: []string{"b1", "b2", "b3", "b4"}},
		{ID: 3, Name: "Charlie", Tag: "CHRL", Players: []string{"c1", "c2", "c3", "c4"}},
	}
}

func testEngine() *Engine {
	return NewEngine(slog.Default())
}

func TestAccumulateTeamStats(t *testing.T) {
	ps := models.DefaultPointSystem()
	maps := []string{"Bermuda", "Purgatorio", "Kalahari"}

	t.Run("single map scenario", func(t *testing.T) {
		// Scenario: one map played, A wins with 5 kills, B second with 10.
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 5},
			{TeamID: 2, MapName: "Bermuda", MapIndex: 0, Placement: 2, Kills: 10},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)
		require.Len(t, stats, 3)

		assert.Equal(t, 17, stats[1].TotalPoints)
		assert.Equal(t, 12, stats[1].TotalPlacementPoints)
		assert.Equal(t, 5, stats[1].TotalKillPoints)
		assert.Equal(t, 1, stats[1].Wins)
		assert.Equal(t, 1, stats[1].Top3Finishes)
		assert.Equal(t, 1, stats[1].GamesPlayed)

		assert.Equal(t, 16, stats[2].TotalPoints)
		assert.Equal(t, 0, stats[2].Wins)
		assert.Equal(t, 1, stats[2].Top3Finishes)
	})

	t.Run("team without results keeps zero totals", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 2},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		require.Contains(t, stats, 3)
		assert.Equal(t, 0, stats[3].TotalPoints)
		assert.Equal(t, 0, stats[3].GamesPlayed)
		require.Len(t, stats[3].MapResults, 3)
		for _, slot := range stats[3].MapResults {
			assert.Nil(t, slot.Placement)
		}
	})

	t.Run("idempotent over repeated runs", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 3, Kills: 4},
			{TeamID: 2, MapName: "Purgatorio", MapIndex: 1, Placement: 1, Kills: 6},
		}

		first, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)
		second, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("later result for same slot overwrites", func(t *testing.T) {
		// A correction changes team 1's Bermuda result from 5th/2 to 2nd/8.
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 5, Kills: 2},
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 2, Kills: 8},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		assert.Equal(t, 1, stats[1].GamesPlayed)
		assert.Equal(t, 14, stats[1].TotalPoints)
		require.NotNil(t, stats[1].MapResults[0].Placement)
		assert.Equal(t, 2, *stats[1].MapResults[0].Placement)
	})

	t.Run("repeated map names stay distinct slots", func(t *testing.T) {
		doubleMaps := []string{"Bermuda", "Bermuda"}
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 3},
			{TeamID: 1, MapName: "Bermuda", MapIndex: 1, Placement: 4, Kills: 1},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), doubleMaps, results, ps)
		require.NoError(t, err)

		assert.Equal(t, 2, stats[1].GamesPlayed)
		assert.Equal(t, 1, stats[1].Wins)
		require.NotNil(t, stats[1].MapResults[1].Placement)
		assert.Equal(t, 4, *stats[1].MapResults[1].Placement)
	})

	t.Run("unknown map dropped, rest processed", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Atlantis", MapIndex: 5, Placement: 1, Kills: 9},
			{TeamID: 2, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 4},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		assert.Equal(t, 0, stats[1].GamesPlayed)
		assert.Equal(t, 1, stats[2].GamesPlayed)
	})

	t.Run("stale index disambiguated by unique name", func(t *testing.T) {
		// The map list was reordered after the match was created; the unique
		// name still pins the result to its slot.
		results := []Result{
			{TeamID: 1, MapName: "Kalahari", MapIndex: 0, Placement: 2, Kills: 3},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		require.NotNil(t, stats[1].MapResults[2].Placement)
		assert.Equal(t, 2, *stats[1].MapResults[2].Placement)
	})

	t.Run("invalid placement dropped, rest processed", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 42, Kills: 1},
			{TeamID: 2, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 2},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		assert.Equal(t, 0, stats[1].GamesPlayed)
		assert.Equal(t, 1, stats[2].Wins)
	})

	t.Run("unknown team is a hard error", func(t *testing.T) {
		results := []Result{
			{TeamID: 99, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 1},
		}

		_, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		assert.ErrorIs(t, err, ErrUnknownTeam)
	})

	t.Run("totals match sum of slot totals", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 5},
			{TeamID: 1, MapName: "Purgatorio", MapIndex: 1, Placement: 3, Kills: 2},
			{TeamID: 1, MapName: "Kalahari", MapIndex: 2, Placement: 7, Kills: 6},
			{TeamID: 2, MapName: "Bermuda", MapIndex: 0, Placement: 2, Kills: 1},
		}

		stats, err := testEngine().AccumulateTeamStats(testTeams(), maps, results, ps)
		require.NoError(t, err)

		for teamID, teamStats := range stats {
			sum := 0
			for _, slot := range teamStats.MapResults {
				sum += slot.TotalPoints
			}
			assert.Equal(t, sum, teamStats.TotalPoints, "team %d", teamID)
		}
	})

	t.Run("no teams yields empty output", func(t *testing.T) {
		stats, err := testEngine().AccumulateTeamStats(nil, maps, nil, ps)
		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}
