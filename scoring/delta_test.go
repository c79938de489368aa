package scoring

import (
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedAt(teamID, position int) RankedTeam {
	return RankedTeam{
		TeamStats: TeamStats{Team: models.Team{ID: teamID}},
		Position:  position,
	}
}

func TestDetectPositionChanges(t *testing.T) {
	t.Run("swap at the top", func(t *testing.T) {
		previous := []RankedTeam{rankedAt(1, 1), rankedAt(2, 2), rankedAt(3, 3)}
		current := []RankedTeam{rankedAt(2, 1), rankedAt(1, 2), rankedAt(3, 3)}

		changes := DetectPositionChanges(previous, current)
		require.Len(t, changes, 2)

		assert.Equal(t, PositionChange{Delta: -1, Direction: DirectionDown, Positions: 1}, changes[1])
		assert.Equal(t, PositionChange{Delta: 1, Direction: DirectionUp, Positions: 1}, changes[2])
		assert.NotContains(t, changes, 3, "unchanged team produces no entry")
	})

	t.Run("multi position climb", func(t *testing.T) {
		previous := []RankedTeam{rankedAt(1, 1), rankedAt(2, 2), rankedAt(3, 3), rankedAt(4, 4)}
		current := []RankedTeam{rankedAt(4, 1), rankedAt(1, 2), rankedAt(2, 3), rankedAt(3, 4)}

		changes := DetectPositionChanges(previous, current)
		assert.Equal(t, PositionChange{Delta: 3, Direction: DirectionUp, Positions: 3}, changes[4])
	})

	t.Run("new arrivals produce no entry", func(t *testing.T) {
		previous := []RankedTeam{rankedAt(1, 1)}
		current := []RankedTeam{rankedAt(1, 1), rankedAt(2, 2)}

		changes := DetectPositionChanges(previous, current)
		assert.Empty(t, changes)
	})

	t.Run("empty previous snapshot", func(t *testing.T) {
		current := []RankedTeam{rankedAt(1, 1), rankedAt(2, 2)}
		assert.Empty(t, DetectPositionChanges(nil, current))
	})
}
