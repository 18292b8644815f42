package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/testutil"
)

// execute runs the root command with a fixed run ID and returns stdout,
// stderr and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newRootCommand(&RootOptions{RunIDs: testutil.NewFixedRunIDGenerator("")})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "advent", cmd.Use)
	assert.Contains(t, cmd.Long, "advent.cue")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"solve", "monkeys", "check", "days"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestMonkeysCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	monkeysCmd, _, err := cmd.Find([]string{"monkeys"})
	require.NoError(t, err)

	require.NotNil(t, monkeysCmd.Flags().Lookup("rounds"))
	require.NotNil(t, monkeysCmd.Flags().Lookup("divisor"))
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	updateFlag := checkCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "false", updateFlag.DefValue)

	filterFlag := checkCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, "--format", "invalid", "days")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestUnreportedErrors(t *testing.T) {
	out, _, err := execute(t, "--format", "invalid", "days")
	require.Error(t, err)
	assert.False(t, Reported(err))
	assert.Empty(t, out)

	_, errOut, err := execute(t, "nope")
	require.Error(t, err)
	assert.False(t, Reported(err))
	assert.NotContains(t, errOut, "Error:")

	out, _, err = execute(t, "--format", "json", "solve", "1", "/nonexistent/day01.txt")
	require.Error(t, err)
	assert.True(t, Reported(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestMissingConfig(t *testing.T) {
	out, _, err := execute(t, "--config", "/nonexistent/advent.cue", "days")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
	assert.Contains(t, out, "reading config")
}

func TestInvalidConfig(t *testing.T) {
	path := testutil.WriteInput(t, "advent.cue", "rope_knots: 1\n")

	out, _, err := execute(t, "--config", path, "days")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "--verbose", "solve", "1", "../puzzles/testdata/day01.txt")
	require.NoError(t, err)
	assert.NotContains(t, out, "level=")
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "run_id=test-run-default")
}

func TestQuietByDefault(t *testing.T) {
	_, errOut, err := execute(t, "solve", "1", "../puzzles/testdata/day01.txt")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "level=INFO")
}
