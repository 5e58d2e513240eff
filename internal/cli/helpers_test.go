package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/arbor/internal/models"
)

// ============================================================================
// Deadline Parsing Tests
// ============================================================================

func TestParseDeadline_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-11-01", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
		{" 2027-02-28 ", time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want), "got %v", got)
		})
	}
}

func TestParseDeadline_Empty(t *testing.T) {
	got, err := ParseDeadline("   ")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDeadline_Invalid(t *testing.T) {
	tests := []string{"tomorrow", "2026-13-01", "01/11/2026", "2026-11-01T10:00:00Z"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDeadline(input)
			var usage *UsageError
			assert.True(t, errors.As(err, &usage), "expected usage error for %q", input)
		})
	}
}

// ============================================================================
// Content Flag Tests
// ============================================================================

func contentCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddContentFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestContentFromFlags_OnlyChangedFlags(t *testing.T) {
	base := models.BoardContent{
		Name:          "Launch",
		Description:   "keep me",
		Assignee:      "alice",
		Tags:          []string{"web"},
		Encrypted:     true,
		EncryptionKey: "k1",
	}

	got, err := ContentFromFlags(contentCommand(t, "--name", "Launch v2", "--public"), base)
	require.NoError(t, err)

	assert.Equal(t, "Launch v2", got.Name)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, "alice", got.Assignee)
	assert.Equal(t, []string{"web"}, got.Tags)
	assert.True(t, got.Public)
	assert.True(t, got.Encrypted)
	assert.Equal(t, "k1", got.EncryptionKey)
}

func TestContentFromFlags_AllFlags(t *testing.T) {
	got, err := ContentFromFlags(contentCommand(t,
		"--name", "Site",
		"--description", "marketing site",
		"--assignee", "bob",
		"--deadline", "2026-12-24",
		"--tag", "a", "--tag", "b",
		"--encrypted",
		"--encryption-key", "kms://site",
	), models.BoardContent{})
	require.NoError(t, err)

	assert.Equal(t, "Site", got.Name)
	assert.Equal(t, "marketing site", got.Description)
	assert.Equal(t, "bob", got.Assignee)
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2026-12-24", got.Deadline.Format(DeadlineLayout))
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.True(t, got.Encrypted)
	assert.Equal(t, "kms://site", got.EncryptionKey)
	assert.False(t, got.Public)
}

func TestContentFromFlags_BadDeadline(t *testing.T) {
	_, err := ContentFromFlags(contentCommand(t, "--deadline", "soon"), models.BoardContent{Name: "x"})
	assert.Equal(t, ExitUsage, ExitCodeFor(err))
}

// ============================================================================
// Output Flag Tests
// ============================================================================

func TestFormatterFor(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddOutputFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--json"}))

	f := FormatterFor(cmd)
	assert.True(t, f.JSON)
	assert.False(t, f.Quiet)

	// commands without output flags print human output
	bare := FormatterFor(&cobra.Command{Use: "bare"})
	assert.False(t, bare.JSON)
	assert.False(t, bare.Quiet)
}
