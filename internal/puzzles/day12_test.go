package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleHeightmap = []string{"Sabqponm", "abcryxxl", "accszExk", "acctuvwj", "abdefghi"}

func TestHeightmap_Sample(t *testing.T) {
	h, err := ParseHeightmap(sampleHeightmap)
	require.NoError(t, err)
	assert.Equal(t, point{0, 0}, h.start)
	assert.Equal(t, point{5, 2}, h.end)

	steps, err := h.StepsFromStart()
	require.NoError(t, err)
	assert.Equal(t, 31, steps)

	steps, err = h.StepsFromLowest()
	require.NoError(t, err)
	assert.Equal(t, 29, steps)
}

func TestHeightmap_DescendAnyDrop(t *testing.T) {
	h, err := ParseHeightmap([]string{"SbE"})
	require.NoError(t, err)
	_, err = h.StepsFromStart()
	assert.ErrorIs(t, err, errNoPath)

	h, err = ParseHeightmap([]string{"zzzS", "Eyxa"})
	require.NoError(t, err)
	assert.Equal(t, 25, h.elevation(point{0, 1}))

	// Every step down is free, every step up is at most one.
	h, err = ParseHeightmap([]string{"SabcdefghijklmnopqrstuvwxyE"})
	require.NoError(t, err)
	steps, err := h.StepsFromStart()
	require.NoError(t, err)
	assert.Equal(t, 26, steps)
}

func TestParseHeightmap_Errors(t *testing.T) {
	tests := map[string][]string{
		"no start":      {"abE"},
		"two ends":      {"SEE"},
		"ragged":        {"Sab", "cE"},
		"bad elevation": {"SA E"},
	}
	for name, lines := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHeightmap(lines)
			assert.Error(t, err)
		})
	}
}
