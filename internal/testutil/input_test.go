package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInput_WritesExactContent(t *testing.T) {
	path := WriteInput(t, "day1.txt", "1\n2\n\n3\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n\n3\n", string(data))
}
