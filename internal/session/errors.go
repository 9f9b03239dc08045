package session

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/wallet-session/internal/model"
)

var (
	// ErrNoAccount is returned when the key provider finished without producing an account
	ErrNoAccount = errors.New("key provider returned no account")
	// ErrUnexpected wraps a panic raised inside the key provider
	ErrUnexpected = errors.New("unexpected key provider failure")
	// ErrClosed is returned when the store was torn down before the attempt completed
	ErrClosed = errors.New("session store closed")
	// ErrInvalidTransition is returned when an operation is not allowed from the current state
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrUnlockUnsupported is returned by Unlock when the store has no Unlocker
	ErrUnlockUnsupported = errors.New("unlock not supported")
)

// ValidationError means the sign-up fields were rejected before any key was created
type ValidationError struct {
	Result model.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid sign up fields: %v", e.Result.Err())
}

// IsValidationError checks if error is ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// CreationError means the key provider did not produce an account.
// Provider errors, nil accounts and provider panics all end up here.
type CreationError struct {
	Account string
	Err     error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create account %q: %v", e.Account, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// IsCreationError checks if error is CreationError
func IsCreationError(err error) bool {
	var target *CreationError
	return errors.As(err, &target)
}
