package scoring

import (
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalMVP(t *testing.T) {
	ps := models.DefaultPointSystem()

	t.Run("highest cross-scrim kill sum wins", func(t *testing.T) {
		// Team X slot 0: kills 3+2+5 = 10 over three matches.
		// Team Y slot 1: kills 4+4 = 8 over two matches.
		teams := []models.Team{
			{ID: 1, Name: "X", Players: []string{"Xena", "X2", "X3", "X4"}},
			{ID: 2, Name: "Y", Players: []string{"Y1", "Yuri", "Y3", "Y4"}},
		}
		results := []Result{
			{TeamID: 1, MapName: "m1", MapIndex: 0, Placement: 1, Kills: 3, PlayerKills: []int{3, 0, 0, 0}},
			{TeamID: 1, MapName: "m2", MapIndex: 1, Placement: 2, Kills: 2, PlayerKills: []int{2, 0, 0, 0}},
			{TeamID: 1, MapName: "m3", MapIndex: 2, Placement: 4, Kills: 5, PlayerKills: []int{5, 0, 0, 0}},
			{TeamID: 2, MapName: "m1", MapIndex: 0, Placement: 2, Kills: 4, PlayerKills: []int{0, 4, 0, 0}},
			{TeamID: 2, MapName: "m2", MapIndex: 1, Placement: 3, Kills: 4, PlayerKills: []int{0, 4, 0, 0}},
		}
		ranked := []RankedTeam{
			{TeamStats: TeamStats{Team: teams[0]}, Position: 1},
			{TeamStats: TeamStats{Team: teams[1]}, Position: 2},
		}

		mvp := GlobalMVP(teams, results, ps, ranked)
		require.NotNil(t, mvp)
		assert.Equal(t, "Xena", mvp.Name)
		assert.Equal(t, 0, mvp.PlayerSlot)
		assert.Equal(t, 10, mvp.TotalKills)
		assert.Equal(t, 10, mvp.TotalPoints)
		assert.Equal(t, 3, mvp.GamesPlayed)
		assert.InDelta(t, 3.3, mvp.AverageKills, 0.001)
		assert.Equal(t, 1, mvp.Team.ID)
		assert.Equal(t, 1, mvp.TeamPosition)
	})

	t.Run("first maximum found wins ties", func(t *testing.T) {
		teams := []models.Team{
			{ID: 1, Players: []string{"First", "Second", "p3", "p4"}},
			{ID: 2, Players: []string{"Other", "p2", "p3", "p4"}},
		}
		results := []Result{
			{TeamID: 1, MapName: "m1", MapIndex: 0, Placement: 1, Kills: 10, PlayerKills: []int{5, 5, 0, 0}},
			{TeamID: 2, MapName: "m1", MapIndex: 0, Placement: 2, Kills: 5, PlayerKills: []int{5, 0, 0, 0}},
		}

		mvp := GlobalMVP(teams, results, ps, nil)
		require.NotNil(t, mvp)
		assert.Equal(t, "First", mvp.Name)
		assert.Equal(t, 0, mvp.PlayerSlot)
	})

	t.Run("missing name falls back to slot placeholder", func(t *testing.T) {
		teams := []models.Team{
			{ID: 1, Players: []string{"", "p2", "p3", "p4"}},
		}
		results := []Result{
			{TeamID: 1, MapName: "m1", MapIndex: 0, Placement: 1, Kills: 3, PlayerKills: []int{3, 0, 0, 0}},
		}

		mvp := GlobalMVP(teams, results, ps, nil)
		require.NotNil(t, mvp)
		assert.Equal(t, "Jugador 1", mvp.Name)
	})

	t.Run("kill rate scales mvp points", func(t *testing.T) {
		custom := ps
		custom.KillPoints = 2
		teams := []models.Team{
			{ID: 1, Players: []string{"p1", "p2", "p3", "p4"}},
		}
		results := []Result{
			{TeamID: 1, MapName: "m1", MapIndex: 0, Placement: 1, Kills: 4, PlayerKills: []int{4, 0, 0, 0}},
		}

		mvp := GlobalMVP(teams, results, custom, nil)
		require.NotNil(t, mvp)
		assert.Equal(t, 4, mvp.TotalKills)
		assert.Equal(t, 8, mvp.TotalPoints)
	})

	t.Run("nil when nobody has kills", func(t *testing.T) {
		teams := []models.Team{
			{ID: 1, Players: []string{"p1", "p2", "p3", "p4"}},
		}
		results := []Result{
			{TeamID: 1, MapName: "m1", MapIndex: 0, Placement: 1, Kills: 0, PlayerKills: []int{0, 0, 0, 0}},
		}

		assert.Nil(t, GlobalMVP(teams, results, ps, nil))
	})

	t.Run("nil for empty inputs", func(t *testing.T) {
		assert.Nil(t, GlobalMVP(nil, nil, ps, nil))
	})
}
