package model

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/multierr"
)

// SessionState is the screen of the onboarding/session flow currently shown
type SessionState string

const (
	SessionWelcome  SessionState = "welcome"
	SessionSignUp   SessionState = "signup"
	SessionSignIn   SessionState = "signin"
	SessionSignedIn SessionState = "signedin"
	SessionLocked   SessionState = "locked"
)

// ParseSessionState converts a raw string into a known SessionState.
func ParseSessionState(s string) (SessionState, error) {
	switch state := SessionState(s); state {
	case SessionWelcome, SessionSignUp, SessionSignIn, SessionSignedIn, SessionLocked:
		return state, nil
	}
	return "", fmt.Errorf("unknown session state %q", s)
}

// SignUpFields is the raw input of one sign-up submission. Never persisted.
type SignUpFields struct {
	Password            string `json:"password"`
	SeedPhrase          string `json:"seedPhrase"`
	AccountName         string `json:"accountName"`
	AcknowledgedWarning bool   `json:"acknowledgedWarning"`
	AcknowledgedBackup  bool   `json:"acknowledgedBackup"`
}

// ValidationResult is the outcome of validating SignUpFields
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Err folds all field errors into a single error, ordered by field name.
// Returns nil for a valid result.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	fields := make([]string, 0, len(r.FieldErrors))
	for field := range r.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var err error
	for _, field := range fields {
		err = multierr.Append(err, fmt.Errorf("%s: %s", field, r.FieldErrors[field]))
	}
	return err
}

// CreateKeyRequest is what gets dispatched to the key provider for one sign-up attempt
type CreateKeyRequest struct {
	Password   string
	Account    string
	SeedPhrase string
}

// SessionSnapshot is a read-only copy of the session state
type SessionSnapshot struct {
	State     SessionState `json:"state"`
	ModalOpen bool         `json:"modalOpen"`
	ModalHelp bool         `json:"modalHelp"`
	Account   *Account     `json:"account,omitempty"`
}

// NotificationKind distinguishes success and error notifications
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a user-facing message shown by the view
type Notification struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Kind  NotificationKind `json:"kind"`
	Time  time.Time        `json:"time"`
}
