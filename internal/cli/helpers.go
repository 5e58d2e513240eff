package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/models"
)

// DeadlineLayout is the accepted --deadline format
const DeadlineLayout = "2006-01-02"

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFor builds the output formatter selected by a command's flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddContentFlags registers the board content flags shared by add and edit
func AddContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Board name")
	cmd.Flags().String("description", "", "Board description")
	cmd.Flags().String("assignee", "", "Who the board is assigned to")
	cmd.Flags().String("deadline", "", "Deadline as YYYY-MM-DD")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().Bool("public", false, "Make the board readable by anyone")
	cmd.Flags().Bool("encrypted", false, "Mark the board content as encrypted")
	cmd.Flags().String("encryption-key", "", "Key reference for an encrypted board")
}

// ContentFromFlags builds board content from the content flags. Flags not
// given keep their value from base, so edit can start from the stored board.
func ContentFromFlags(cmd *cobra.Command, base models.BoardContent) (models.BoardContent, error) {
	c := base
	flags := cmd.Flags()
	if flags.Changed("name") {
		c.Name, _ = flags.GetString("name")
	}
	if flags.Changed("description") {
		c.Description, _ = flags.GetString("description")
	}
	if flags.Changed("assignee") {
		c.Assignee, _ = flags.GetString("assignee")
	}
	if flags.Changed("deadline") {
		raw, _ := flags.GetString("deadline")
		deadline, err := ParseDeadline(raw)
		if err != nil {
			return c, err
		}
		c.Deadline = deadline
	}
	if flags.Changed("tag") {
		c.Tags, _ = flags.GetStringSlice("tag")
	}
	if flags.Changed("public") {
		c.Public, _ = flags.GetBool("public")
	}
	if flags.Changed("encrypted") {
		c.Encrypted, _ = flags.GetBool("encrypted")
	}
	if flags.Changed("encryption-key") {
		c.EncryptionKey, _ = flags.GetString("encryption-key")
	}
	return c, nil
}

// ParseDeadline parses a YYYY-MM-DD date as UTC midnight. An empty string
// clears the deadline.
func ParseDeadline(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DeadlineLayout, raw, time.UTC)
	if err != nil {
		return nil, &UsageError{Msg: fmt.Sprintf("deadline must be YYYY-MM-DD, got: %s", raw)}
	}
	return &t, nil
}
