// Package check holds the integrity check command
//
// e.g., arbor check --user=alice
package check

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/app"
	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
	"github.com/thenoetrevino/arbor/internal/cli/styles"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every list in a user's tree",
		Long: `Walk the user's root list and every group of the user's boards and
verify each chain ends exactly once without cycles. Exits with a data error
when a broken list is found.

Examples:
  arbor check --user=alice
  arbor check --user=alice --json
`,
		RunE: runCheck,
	}

	cmd.Flags().String("user", "", "Username (default: $ARBOR_USER or the OS user)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// listResult is one verified list
type listResult struct {
	ListID string `json:"list_id"`
	Owner  string `json:"owner"`
	Boards int    `json:"boards"`
	Links  int    `json:"links"`
	Error  string `json:"error,omitempty"`
}

// reportResult is the printable integrity report
type reportResult struct {
	Username string       `json:"username"`
	OK       bool         `json:"ok"`
	Lists    []listResult `json:"lists"`
}

func newReportResult(r *app.IntegrityReport) reportResult {
	out := reportResult{Username: r.Username, OK: len(r.Problems()) == 0, Lists: make([]listResult, 0, len(r.Lists))}
	for _, l := range r.Lists {
		lr := listResult{ListID: l.ListID.String(), Owner: l.Owner, Boards: l.Boards, Links: l.Links}
		if l.Err != nil {
			lr.Error = l.Err.Error()
		}
		out.Lists = append(out.Lists, lr)
	}
	return out
}

// Human implements cli.HumanReadable
func (r reportResult) Human() string {
	lines := make([]string, 0, len(r.Lists)+1)
	for _, l := range r.Lists {
		if l.Error != "" {
			lines = append(lines, styles.ErrorStyle.Render(fmt.Sprintf("✗ %s (%s): %s", l.Owner, l.ListID, l.Error)))
			continue
		}
		lines = append(lines, fmt.Sprintf("✓ %s (%s): %d boards, %d links", l.Owner, l.ListID, l.Boards, l.Links))
	}
	if r.OK {
		lines = append(lines, fmt.Sprintf("All %d lists of %s are intact", len(r.Lists), r.Username))
	}
	return strings.Join(lines, "\n")
}

// runCheck prints the report even when lists are broken, then fails with the
// integrity error so the exit code reflects it
func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := cli.FormatterFor(cmd)

	username, err := handler.NewFlagParser(cmd).ParseUsernameOrCurrent("user")
	if err != nil {
		return formatter.Fail(err)
	}

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	report, err := c.App.CheckIntegrity(ctx, username)
	if report == nil {
		return formatter.Fail(err)
	}
	if err != nil {
		if !formatter.JSON && !formatter.Quiet {
			fmt.Println(newReportResult(report).Human())
		}
		return formatter.Fail(err)
	}
	return formatter.Success(newReportResult(report))
}
