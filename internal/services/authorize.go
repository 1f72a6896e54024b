package services

import (
	"fmt"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// Authorize applies the role and ownership policy for a mutating operation:
// the caller must hold the required role and must own the resource. It is a
// binary allow/deny; there is no admin override or shared ownership.
//
// Creation-style operations pass the caller's own id as ownerID so only the
// role check applies.
func Authorize(callerID uuid.UUID, callerRole models.Role, ownerID uuid.UUID, requiredRole models.Role) error {
	if callerRole != requiredRole {
		return fmt.Errorf("%w: requires role %s", ErrForbidden, requiredRole)
	}
	if callerID != ownerID {
		return fmt.Errorf("%w: resource belongs to another user", ErrForbidden)
	}
	return nil
}
