package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/testutil"
)

const monkeySample = "../puzzles/testdata/day11.txt"

func TestMonkeysDefaults(t *testing.T) {
	out, _, err := execute(t, "monkeys", monkeySample)
	require.NoError(t, err)

	want := "Monkey business after 20 rounds (divisor 3): 10605\n" +
		"Monkey 0 inspected items 101 times.\n" +
		"Monkey 1 inspected items 95 times.\n" +
		"Monkey 2 inspected items 7 times.\n" +
		"Monkey 3 inspected items 105 times.\n"
	assert.Equal(t, want, out)
}

func TestMonkeysJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "monkeys", monkeySample, "--divisor", "1")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   MonkeysResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, MonkeysResult{
		Rounds:         20,
		Divisor:        1,
		Modulus:        96577,
		MonkeyBusiness: 10197,
		Inspections:    []uint64{99, 97, 8, 103},
	}, resp.Data)
}

func TestMonkeysModularRounds(t *testing.T) {
	out, _, err := execute(t, "monkeys", monkeySample, "--rounds", "10000", "--divisor", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Monkey business after 10000 rounds (divisor 1): 2713310158\n")
}

func TestMonkeysConfigDefaults(t *testing.T) {
	cfg := testutil.WriteInput(t, "advent.cue", "monkey: {relief_rounds: 1, relief_divisor: 3}\n")

	out, _, err := execute(t, "--config", cfg, "monkeys", monkeySample)
	require.NoError(t, err)
	assert.Contains(t, out, "Monkey business after 1 rounds (divisor 3): 20\n")
}

func TestMonkeysVerboseLogsRounds(t *testing.T) {
	_, errOut, err := execute(t, "--verbose", "monkeys", monkeySample, "--rounds", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "actors loaded")
}

func TestMonkeysErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing input", []string{"monkeys", "/nonexistent/day11.txt"}, ErrCodeInput},
		{"malformed input", []string{"monkeys", "../puzzles/testdata/day10.txt"}, ErrCodeMalformed},
		{"zero divisor", []string{"monkeys", monkeySample, "--divisor", "0"}, ErrCodeContract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, out, "Error ["+tt.code+"]")
		})
	}
}
