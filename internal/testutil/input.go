// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteInput writes content to a file named name inside a fresh temp
// directory and returns its path. The directory is removed with the test.
func WriteInput(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input %s: %v", path, err)
	}
	return path
}
