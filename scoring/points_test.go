package scoring

import (
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestResolvePoints(t *testing.T) {
	ps := models.DefaultPointSystem()

	t.Run("placement plus kills", func(t *testing.T) {
		breakdown, err := ResolvePoints(intPtr(1), 5, ps)
		require.NoError(t, err)
		assert.Equal(t, 12, breakdown.PlacementPoints)
		assert.Equal(t, 5, breakdown.KillPoints)
		assert.Equal(t, 17, breakdown.TotalPoints)
	})

	t.Run("nil placement scores zero placement points", func(t *testing.T) {
		breakdown, err := ResolvePoints(nil, 3, ps)
		require.NoError(t, err)
		assert.Equal(t, 0, breakdown.PlacementPoints)
		assert.Equal(t, 3, breakdown.TotalPoints)
	})

	t.Run("unconfigured trailing placements score zero", func(t *testing.T) {
		breakdown, err := ResolvePoints(intPtr(12), 0, ps)
		require.NoError(t, err)
		assert.Equal(t, 0, breakdown.TotalPoints)
	})

	t.Run("custom kill rate", func(t *testing.T) {
		custom := ps
		custom.KillPoints = 3
		breakdown, err := ResolvePoints(intPtr(2), 4, custom)
		require.NoError(t, err)
		assert.Equal(t, 6, breakdown.PlacementPoints)
		assert.Equal(t, 12, breakdown.KillPoints)
		assert.Equal(t, 18, breakdown.TotalPoints)
	})

	t.Run("out of range placement rejected", func(t *testing.T) {
		_, err := ResolvePoints(intPtr(0), 0, ps)
		assert.ErrorIs(t, err, ErrInvalidPlacement)

		_, err = ResolvePoints(intPtr(13), 0, ps)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
	})

	t.Run("negative kills rejected", func(t *testing.T) {
		_, err := ResolvePoints(intPtr(1), -1, ps)
		assert.ErrorIs(t, err, ErrNegativeKills)
	})

	t.Run("deterministic over all placements", func(t *testing.T) {
		for placement := 1; placement <= 12; placement++ {
			first, err := ResolvePoints(intPtr(placement), 7, ps)
			require.NoError(t, err)
			second, err := ResolvePoints(intPtr(placement), 7, ps)
			require.NoError(t, err)
			assert.Equal(t, first, second, "placement %d", placement)
		}
	})
}
