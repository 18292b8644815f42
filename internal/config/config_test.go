package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "inputs", cfg.Inputs)
	assert.Empty(t, cfg.Days)
	assert.Equal(t, 20, cfg.Monkey.ReliefRounds)
	assert.Equal(t, uint64(3), cfg.Monkey.ReliefDivisor)
	assert.Equal(t, 10000, cfg.Monkey.ModularRounds)
	assert.Equal(t, 10, cfg.RopeKnots)
}

func TestParse_Overrides(t *testing.T) {
	src := `
inputs: "puzzles"
days: "11": "monkeys.txt"
monkey: modular_rounds: 500
rope_knots: 2
`
	cfg, err := Parse("advent.cue", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "puzzles", cfg.Inputs)
	assert.Equal(t, 500, cfg.Monkey.ModularRounds)
	assert.Equal(t, 20, cfg.Monkey.ReliefRounds, "unset fields keep their default")
	assert.Equal(t, 2, cfg.RopeKnots)
	assert.Equal(t, "monkeys.txt", cfg.InputPath(11))
	assert.Equal(t, filepath.Join("puzzles", "day01.txt"), cfg.InputPath(1))
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse("advent.cue", []byte(`inptus: "typo"`))
	require.Error(t, err)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "inptus")
}

func TestParse_RejectsConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero divisor", `monkey: relief_divisor: 0`},
		{"short rope", `rope_knots: 1`},
		{"negative rounds", `monkey: relief_rounds: -1`},
		{"wrong type", `inputs: 3`},
		{"bad day key", `days: eleven: "x.txt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("advent.cue", []byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestParse_SyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse("broken.cue", []byte("inputs: \"x\"\nmonkey: {"))
	require.Error(t, err)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, cfgErr.Pos.IsValid())
	assert.Contains(t, err.Error(), "broken.cue")
}

func TestLoad_File(t *testing.T) {
	path := testutil.WriteInput(t, "advent.cue", `rope_knots: 4`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.RopeKnots)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_MissingDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
