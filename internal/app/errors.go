package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/thenoetrevino/arbor/internal/models"
)

const (
	maxNameLength     = 255
	maxUsernameLength = 64
)

// Validation errors. All of them match models.ErrInvalidArgument.
var (
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidArgument)
	ErrNameTooLong     = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrInvalidArgument, maxNameLength)
	ErrInvalidUsername = fmt.Errorf("%w: username must be 1-%d characters without whitespace", models.ErrInvalidArgument, maxUsernameLength)
	ErrEmptyID         = fmt.Errorf("%w: id cannot be empty", models.ErrInvalidArgument)
	ErrRootGroup       = fmt.Errorf("%w: root list cannot be changed through group operations", models.ErrInvalidArgument)
	ErrNegativeOrder   = fmt.Errorf("%w: order cannot be negative", models.ErrInvalidArgument)
	ErrMissingKey      = fmt.Errorf("%w: encrypted board needs an encryption key", models.ErrInvalidArgument)
)

// classify keeps every returned error inside the models taxonomy. Context
// errors from the caller pass through untouched; anything else is a storage
// failure whose message is kept and whose type is hidden.
func (a *App) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	kind := models.Kind(err)
	switch kind {
	case nil:
		a.logger.Error("storage failure", "op", op, "error", err)
		return fmt.Errorf("%s: %w: %v", op, models.ErrStorage, err)
	case models.ErrStructuralIntegrity, models.ErrStorage:
		a.logger.Error("operation failed", "op", op, "error", err)
	case models.ErrLockTimeout:
		a.logger.Warn("operation failed", "op", op, "error", err)
	}
	return err
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ErrInvalidUsername
	}
	return nil
}

func validateContent(c models.BoardContent) error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.Encrypted && c.EncryptionKey == "" {
		return ErrMissingKey
	}
	return nil
}
