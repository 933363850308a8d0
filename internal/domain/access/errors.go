package access

import "fmt"

// AuthorizationError indicates the actor lacks the capability for an
// action. It is surfaced as a permission failure and never retried.
type AuthorizationError struct {
	Action Action
}

// Error returns the permission failure message for the attempted action.
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not permitted to perform %s", e.Action)
}

// Denied builds the AuthorizationError for an action. Usecases call it
// after a false CanPerform result.
func Denied(action Action) error {
	return &AuthorizationError{Action: action}
}
