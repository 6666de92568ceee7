// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

// storageError folds store errors into the apperror taxonomy.
func storageError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrValidation),
		errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrConflict):
		return err
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", op, apperror.ErrNotFound)
	case errors.Is(err, store.ErrDuplicateSlug), errors.Is(err, store.ErrDuplicateKey):
		return fmt.Errorf("%s: %w", op, apperror.ErrConflict)
	case errors.Is(err, store.ErrSlugAlreadySet):
		return fmt.Errorf("%s: %w: %w", op, apperror.ErrConflict, err)
	}
	return fmt.Errorf("%w: %s: %v", apperror.ErrStorage, op, err)
}
