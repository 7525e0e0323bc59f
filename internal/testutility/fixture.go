// Package testutility holds helpers shared by the quickbom tests.
package testutility

import (
	"os"
	"testing"
)

// LoadFixture returns the raw contents of the fixture file
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	file, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to open fixture: %s", err)
	}

	return file
}
