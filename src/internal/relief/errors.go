package relief

import (
	"fmt"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

// ValidationError rejects an action before any state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == model.ErrValidation }

// AuthorizationError is returned when the acting user's role does not permit the action.
type AuthorizationError struct {
	Role   model.Role
	Action Action
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q may not %s", e.Role, e.Action)
}

func (e *AuthorizationError) Is(target error) bool { return target == model.ErrForbidden }

var errNoUser = &ValidationError{Field: "user", Reason: "no authenticated user"}
