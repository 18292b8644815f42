package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuide(t *testing.T) {
	guide, err := ParseGuide([]string{"A Y", "B X", "C Z"})
	require.NoError(t, err)
	assert.Equal(t, []Guide{{Rock, 1}, {Paper, 0}, {Scissors, 2}}, guide)
}

func TestParseGuide_Malformed(t *testing.T) {
	for _, line := range []string{"", "A", "AY", "D X", "A W", "A  Y", "a y"} {
		_, err := ParseGuide([]string{line})
		assert.Error(t, err, "line %q", line)
	}
}

func TestScores(t *testing.T) {
	guide := []Guide{{Rock, 1}, {Paper, 0}, {Scissors, 2}}
	assert.Equal(t, 15, ScoreAsMoves(guide))
	assert.Equal(t, 12, ScoreAsOutcomes(guide))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 1+3, roundScore(Rock, Rock))
	assert.Equal(t, 2+6, roundScore(Paper, Rock))
	assert.Equal(t, 3+0, roundScore(Scissors, Rock))
	assert.Equal(t, 1+6, roundScore(Rock, Scissors))
}
