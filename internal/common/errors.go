// Package common defines shared constants and sentinel errors used across
// the vault core and the CLI. Callers should use errors.Is to match these
// values and errors.As (or RemainingAttempts) to read attempt budgets.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorNoSuchUser    = errors.New("no such user")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorNotAuthenticated = errors.New("not authenticated")

	// Credential errors.
	ErrorWrongPassword = errors.New("wrong password")
	ErrorWrongPasskey  = errors.New("wrong passkey")
	ErrorLockedOut     = errors.New("locked out")
)

// AttemptsError reports a failed credential check together with the number
// of attempts left before lockout. Err is ErrorWrongPassword or
// ErrorWrongPasskey.
type AttemptsError struct {
	Err       error
	Remaining int
}

func (e *AttemptsError) Error() string {
	return fmt.Sprintf("%s: %d attempts remaining", e.Err, e.Remaining)
}

func (e *AttemptsError) Unwrap() error {
	return e.Err
}

// RemainingAttempts extracts the attempt budget carried by err, if any.
func RemainingAttempts(err error) (int, bool) {
	var ae *AttemptsError
	if errors.As(err, &ae) {
		return ae.Remaining, true
	}
	return 0, false
}
