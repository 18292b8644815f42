package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/parser"
)

func TestCalorieTotals(t *testing.T) {
	lines := []string{"1000", "2000", "3000", "", "4000", "", "5000", "6000", "", "7000", "8000", "9000", "", "10000"}
	totals, err := CalorieTotals(lines)
	require.NoError(t, err)
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals)
}

func TestCalorieTotals_ErrorIndexIsFileLine(t *testing.T) {
	_, err := CalorieTotals([]string{"1", "2", "", "3", "x"})
	require.Error(t, err)

	var pe *parser.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Index)
	assert.Equal(t, "x", pe.Record)
}

func TestTopCalories(t *testing.T) {
	totals := []int{6000, 4000, 11000, 24000, 10000}
	assert.Equal(t, 24000, TopCalories(totals, 1))
	assert.Equal(t, 45000, TopCalories(totals, 3))
	assert.Equal(t, 10000, TopCalories([]int{4000, 6000}, 3))
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals, "input must not be reordered")
}
