package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlayers(t *testing.T) {
	t.Run("plain name list", func(t *testing.T) {
		names, err := DecodePlayers([]byte(`["Ana","Bo","Cy","Dee"]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Bo", "Cy", "Dee"}, names)
	})

	t.Run("object list", func(t *testing.T) {
		names, err := DecodePlayers([]byte(`[{"name":"Ana"},{"name":"Bo"}]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Bo"}, names)
	})

	t.Run("double-encoded list", func(t *testing.T) {
		names, err := DecodePlayers([]byte(`"[\"Ana\",\"Bo\"]"`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Bo"}, names)
	})

	t.Run("empty column", func(t *testing.T) {
		names, err := DecodePlayers(nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := DecodePlayers([]byte(`{"name":"Ana"}`))
		assert.Error(t, err)
	})
}

func TestPlayerName(t *testing.T) {
	team := &Team{Players: []string{"Ana", "", "Cy", "Dee"}}

	assert.Equal(t, "Ana", team.PlayerName(0))
	assert.Equal(t, "Jugador 2", team.PlayerName(1), "blank name falls back to placeholder")
	assert.Equal(t, "Jugador 7", team.PlayerName(6), "out of range slot falls back")
	assert.Equal(t, "Jugador 0", team.PlayerName(-1))
}
