package hierarchy

import (
	"errors"

	"github.com/thenoetrevino/arbor/internal/models"
)

func ignoreNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	return err
}
