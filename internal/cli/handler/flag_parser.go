package handler

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
	"github.com/thenoetrevino/arbor/internal/user"
)

// FlagParser provides common flag extraction patterns. Every error it
// returns is a *cli.UsageError.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

func usagef(format string, args ...any) error {
	return &cli.UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usagef("failed to parse --%s flag: %v", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", usagef("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usagef("failed to parse --%s flag: %v", flagName, err)
	}
	return strings.TrimSpace(value), nil
}

// ParseID extracts a required node id
func (p *FlagParser) ParseID(flagName string) (types.NodeID, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "", usagef("--%s must be a single id, got: %q", flagName, value)
	}
	return types.NodeID(value), nil
}

// ParseUsername extracts a required username
func (p *FlagParser) ParseUsername(flagName string) (string, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "", usagef("--%s cannot contain whitespace, got: %q", flagName, value)
	}
	return value, nil
}

// ParseUsernameOrCurrent extracts a username, falling back to $ARBOR_USER and
// then the OS user when the flag is not given
func (p *FlagParser) ParseUsernameOrCurrent(flagName string) (string, error) {
	value, err := p.ParseStringOptional(flagName)
	if err != nil {
		return "", err
	}
	if value == "" {
		value = user.GetCurrentUsername()
	}
	if value == "" {
		return "", usagef("--%s is required: no %s set and no OS user found", flagName, user.EnvVar)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "", usagef("--%s cannot contain whitespace, got: %q", flagName, value)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	value, err := p.cmd.Flags().GetBool(flagName)
	if err != nil {
		return false, usagef("failed to parse --%s flag: %v", flagName, err)
	}
	return value, nil
}

// ParseInt extracts an int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, usagef("failed to parse --%s flag: %v", flagName, err)
	}
	return value, nil
}

// ParseContent reads the board content flags over base
func (p *FlagParser) ParseContent(base models.BoardContent) (models.BoardContent, error) {
	return cli.ContentFromFlags(p.cmd, base)
}
