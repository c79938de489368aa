package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlayerKills(t *testing.T) {
	t.Run("index keyed object", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`{"0":3,"2":1}`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 0, 1, 0}, kills)
	})

	t.Run("stringified values", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`{"0":"3","1":"2"}`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 0, 0}, kills)
	})

	t.Run("plain array", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`[1,2,3,4]`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, kills)
	})

	t.Run("double-encoded object", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`"{\"1\":5}"`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 5, 0, 0}, kills)
	})

	t.Run("out of range slots are ignored", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`{"0":1,"9":7,"-1":2}`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 0, 0}, kills)
	})

	t.Run("array longer than roster is truncated", func(t *testing.T) {
		kills, err := NormalizePlayerKills([]byte(`[1,2,3,4,5,6,7]`), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, kills)
	})

	t.Run("negative kills are rejected", func(t *testing.T) {
		_, err := NormalizePlayerKills([]byte(`{"0":-1}`), 4)
		assert.Error(t, err)
	})

	t.Run("empty column yields zeroed slots", func(t *testing.T) {
		kills, err := NormalizePlayerKills(nil, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0, 0}, kills)
	})
}

func TestSumPlayerKills(t *testing.T) {
	assert.Equal(t, 10, SumPlayerKills([]int{3, 2, 5, 0}))
	assert.Equal(t, 0, SumPlayerKills(nil))
}

func TestValidPlacement(t *testing.T) {
	assert.True(t, ValidPlacement(1))
	assert.True(t, ValidPlacement(12))
	assert.False(t, ValidPlacement(0))
	assert.False(t, ValidPlacement(13))
	assert.False(t, ValidPlacement(-3))
}

func TestEncodePlayerKills(t *testing.T) {
	encoded, err := EncodePlayerKills([]int{3, 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"0":3,"1":2}`, string(encoded))

	encoded, err = EncodePlayerKills(nil)
	require.NoError(t, err)
	assert.Nil(t, encoded, "no stats must store as NULL, not an empty object")
}
