package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/monkey"
)

func TestMonkeyBusiness_Variants(t *testing.T) {
	relief, err := MonkeyBusiness(samplePath(11), 20, monkey.ReliefDivisor)
	require.NoError(t, err)
	assert.Equal(t, uint64(10605), relief)

	modular, err := MonkeyBusiness(samplePath(11), 10000, monkey.NoRelief)
	require.NoError(t, err)
	assert.Equal(t, uint64(2713310158), modular)
}

func TestMonkeyBusiness_RoundsFromParams(t *testing.T) {
	d, err := Lookup(11)
	require.NoError(t, err)

	p := DefaultParams()
	p.Monkey.ModularRounds = 20
	got, err := d.Part2(samplePath(11), p)
	require.NoError(t, err)
	// Round 20 of the modular variant: 103 * 99.
	assert.Equal(t, "10197", got)
}

func TestMonkeyBusiness_ParseError(t *testing.T) {
	_, err := MonkeyBusiness(samplePath(10), 20, monkey.ReliefDivisor)
	require.Error(t, err)
	assert.True(t, monkey.IsParseError(err))
}
