package session

import "fmt"

// AuthenticationError is deliberately generic: it never reveals whether the
// email, password or account status was the mismatch.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}

// ValidationError reports the first registration field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
