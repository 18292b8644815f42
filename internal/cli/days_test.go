package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/testutil"
)

func TestDaysJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "days")
	require.NoError(t, err)

	var resp struct {
		Data []DayInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 13)
	assert.Equal(t, DayInfo{Day: 1, Title: "Calorie Counting", Input: "inputs/day01.txt"}, resp.Data[0])
	assert.Equal(t, 13, resp.Data[12].Day)
}

func TestDaysText(t *testing.T) {
	cfg := testutil.WriteInput(t, "advent.cue", `days: "11": "monkeys.txt"`+"\n")

	out, _, err := execute(t, "--config", cfg, "days")
	require.NoError(t, err)
	assert.Contains(t, out, " 11  Monkey in the Middle       monkeys.txt\n")
	assert.Contains(t, out, " 12  Hill Climbing Algorithm    inputs/day12.txt\n")
}
