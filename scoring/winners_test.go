package scoring

import (
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWinners(t *testing.T) {
	ps := models.DefaultPointSystem()
	maps := []string{"Bermuda", "Purgatorio", "Kalahari"}
	teams := testTeams()

	t.Run("only played maps produce winners", func(t *testing.T) {
		// Three configured maps, only the first has results.
		results := []Result{
			{TeamID: 2, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 7},
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 2, Kills: 3},
		}

		winners := MapWinners(maps, results, teams, ps)
		require.Len(t, winners, 1)
		assert.Equal(t, "Bermuda", winners[0].MapName)
		assert.Equal(t, 2, winners[0].Team.ID)
		assert.Equal(t, 7, winners[0].Kills)
		assert.Equal(t, 19, winners[0].Points)
	})

	t.Run("winners follow rotation order", func(t *testing.T) {
		results := []Result{
			{TeamID: 3, MapName: "Kalahari", MapIndex: 2, Placement: 1, Kills: 2},
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 4},
		}

		winners := MapWinners(maps, results, teams, ps)
		require.Len(t, winners, 2)
		assert.Equal(t, "Bermuda", winners[0].MapName)
		assert.Equal(t, "Kalahari", winners[1].MapName)
	})

	t.Run("no results yields no winners", func(t *testing.T) {
		assert.Empty(t, MapWinners(maps, nil, teams, ps))
	})

	t.Run("no teams yields no winners", func(t *testing.T) {
		results := []Result{
			{TeamID: 1, MapName: "Bermuda", MapIndex: 0, Placement: 1, Kills: 4},
		}
		assert.Empty(t, MapWinners(maps, results, nil, ps))
	})
}
