package services

import (
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/storage"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, operation)
	}
	if errors.Is(err, storage.ErrDuplicateApplication) {
		return fmt.Errorf("%w: %s", ErrDuplicateApplication, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
