package errors

import (
	"errors"
	"fmt"
)

// Common error types for the back-office application
var (
	// Persisted session errors, recovered locally by purging the session
	ErrInvalidSession = errors.New("invalid session")
	ErrDemoToken      = errors.New("demo token rejected")
	ErrIncompleteUser = errors.New("incomplete user record")

	// Login errors
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUnexpectedLoginResponse = errors.New("unexpected login response")

	// Backend transport errors
	ErrTimeout          = errors.New("request timed out")
	ErrUnavailable      = errors.New("backend unavailable")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrUnhealthy        = errors.New("backend unhealthy")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrPayloadTooLarge  = errors.New("payload too large")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
