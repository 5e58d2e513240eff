package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/testutil"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	testutil.SetupCobraCommand(cmd, args)
}

// JSONData returns the data object of a successful JSON response
func JSONData(t *testing.T, output string) map[string]any {
	t.Helper()
	result := ParseJSON(t, output)
	if ok, _ := result["success"].(bool); !ok {
		t.Fatalf("expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %s", output)
	}
	return data
}
