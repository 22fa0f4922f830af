// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SpeedtestOutput is a typical speedtest-cli report.
const SpeedtestOutput = `Retrieving speedtest.net configuration...
Testing from Example ISP (203.0.113.7)...
Retrieving speedtest.net server list...
Selecting best server based on ping...
Hosted by Example Host (Milan) [12.34 km]: 18.123 ms
Testing download speed................................................................................
Download: 55.23 Mbit/s
Testing upload speed......................................................................................................
Upload: 12.10 Mbit/s
`

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// FakeCommand writes an executable shell script called name into a fresh
// directory and prepends that directory to PATH for the rest of the test.
func FakeCommand(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil { //nolint:gosec // test script must be executable
		t.Fatalf("failed to write fake command: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}
