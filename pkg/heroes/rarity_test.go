package heroes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata/pkg/heroes"
)

func TestRarity_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]heroes.Rarity{"rarity": heroes.RarityEpic})
	require.NoError(t, err)
	require.JSONEq(t, `{"rarity":"Epic"}`, string(data))
}

func TestParseRarity(t *testing.T) {
	t.Parallel()

	r, ok := heroes.ParseRarity("legendary")
	require.True(t, ok)
	require.Equal(t, heroes.RarityLegendary, r)
	require.Equal(t, "Legendary", r.String())

	_, ok = heroes.ParseRarity("Shiny")
	require.False(t, ok)
	require.Equal(t, "Unknown", heroes.Rarity(42).String())
}
