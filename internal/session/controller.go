package session

import (
	"context"
	"errors"
	"sync"

	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/validation"
)

// Failure messages shown when the fields were valid but no account came out
const (
	CreationFailedMessage = "Account creation failed. Please try again."
	AccountExistsMessage  = "An account with this name already exists. Choose another name."
)

// Failure codes, paired with the messages above
const (
	FailureCreation      = "creation_failed"
	FailureAccountExists = "account_exists"
)

// SignUpController runs sign-up submissions for a view and keeps the outcome of the
// latest one for display. It never returns errors to the view.
type SignUpController struct {
	store *Store

	mu         sync.Mutex
	validation model.ValidationResult
	failure    string
	code       string
	account    *model.Account
}

// NewSignUpController creates a controller bound to store
func NewSignUpController(store *Store) *SignUpController {
	return &SignUpController{
		store:      store,
		validation: model.ValidationResult{Valid: true},
	}
}

// OnSubmit makes a fresh sign-up attempt with fields.
// Field errors end up in Validation, other failures in Failure.
func (c *SignUpController) OnSubmit(ctx context.Context, fields model.SignUpFields) {
	account, err := c.store.SignUp(ctx, fields)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.account = account
	c.failure, c.code = "", ""

	var verr *ValidationError
	switch {
	case err == nil:
		c.validation = model.ValidationResult{Valid: true}
	case errors.As(err, &verr):
		c.validation = verr.Result
	case errors.Is(err, model.ErrAccountExists):
		c.validation = validation.Validate(fields)
		c.failure, c.code = AccountExistsMessage, FailureAccountExists
	default:
		c.validation = validation.Validate(fields)
		c.failure, c.code = CreationFailedMessage, FailureCreation
	}
}

// Validation returns the field validation of the latest submission
func (c *SignUpController) Validation() model.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validation
}

// Failure returns the creation failure message of the latest submission, or ""
func (c *SignUpController) Failure() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// FailureCode returns FailureCreation or FailureAccountExists for a failed submission, or ""
func (c *SignUpController) FailureCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// Account returns the account created by the latest submission, or nil
func (c *SignUpController) Account() *model.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account
}
