package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes a day 1 scenario expecting part1 into dir and
// returns its path.
func writeScenario(t *testing.T, dir, name, part1 string) string {
	t.Helper()

	input, err := filepath.Abs("../puzzles/testdata/day01.txt")
	require.NoError(t, err)

	content := fmt.Sprintf(`name: %s
description: "Calorie totals"
day: 1
input: %s
assertions:
  - type: answer_equals
    part: 1
    value: "%s"
`, name, input, part1)

	path := filepath.Join(dir, name+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckCommandMissingArgs(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestCheckCommandNonExistentDir(t *testing.T) {
	out, _, err := execute(t, "check", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Contains(t, out, "Error [E007]: scenarios directory not found")
	assert.True(t, Reported(err))
}

func TestCheckCommandEmptyDir(t *testing.T) {
	out, _, err := execute(t, "check", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestCheckCommandEmptyDirJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "check", t.TempDir())
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
}

func TestCheckShippedScenarios(t *testing.T) {
	out, _, err := execute(t, "check", "../../scenarios")
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ day11_sample\n")
	assert.Contains(t, out, "0 failed")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestCheckFilter(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "check", "../../scenarios", "--filter", "day11*")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.Passed)
	for _, s := range resp.Data.Scenarios {
		assert.Contains(t, s.Name, "day11")
	}
}

func TestCheckFailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "wrong_total", "1")

	out, _, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_total")
	assert.Contains(t, out, `Expected: answer "1"`)
	assert.Contains(t, out, "Check Summary: 0 passed, 1 failed, 1 total")
}

func TestCheckFailingScenarioJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "wrong_total", "1")
	writeScenario(t, dir, "right_total", "24000")

	out, _, err := execute(t, "--format", "json", "check", dir)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, "1 scenario(s) failed", resp.Error.Message)
	assert.Equal(t, "test-run-default", resp.RunID)
}

func TestCheckLoadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: broken\n"), 0644))

	out, _, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestCheckGoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "calories", "24000")

	out, _, err := execute(t, "check", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ calories (golden updated)")

	golden := goldenFilePath(path)
	assert.Equal(t, filepath.Join(dir, "golden", "calories.golden"), golden)
	data, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t,
		`{"day":1,"parts":[{"answer":"24000","part":1},{"answer":"45000","part":2}],"scenario_name":"calories"}`,
		string(data))

	out, _, err = execute(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ calories\n")

	require.NoError(t, os.WriteFile(golden, []byte(`{"day":1}`), 0644))
	out, _, err = execute(t, "check", dir)
	require.Error(t, err)
	assert.Contains(t, out, "answers do not match golden file")
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"day01.yaml", "day11.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = findScenarioFiles(dir, "day11")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "day11.yml")}, files)

	_, err = findScenarioFiles(dir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}
