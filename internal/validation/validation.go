// Package validation checks sign-up input before any key material is created.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AlexZinkM/wallet-session/internal/model"
)

const (
	MinPasswordLength    = 10
	MinAccountNameLength = 5
)

// Field names used as keys in ValidationResult.FieldErrors
const (
	FieldPassword            = "password"
	FieldSeedPhrase          = "seedPhrase"
	FieldAccountName         = "accountName"
	FieldAcknowledgedWarning = "acknowledgedWarning"
	FieldAcknowledgedBackup  = "acknowledgedBackup"
)

// Validate checks every rule and collects all violations.
// The seed phrase is only checked for presence; its correctness is left to the key provider.
func Validate(fields model.SignUpFields) model.ValidationResult {
	errs := make(map[string]string)

	if utf8.RuneCountInString(fields.Password) < MinPasswordLength {
		errs[FieldPassword] = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	if strings.TrimSpace(fields.SeedPhrase) == "" {
		errs[FieldSeedPhrase] = "seed phrase is required"
	}
	if utf8.RuneCountInString(fields.AccountName) < MinAccountNameLength {
		errs[FieldAccountName] = fmt.Sprintf("account name must be at least %d characters", MinAccountNameLength)
	}
	if !fields.AcknowledgedWarning {
		errs[FieldAcknowledgedWarning] = "you must acknowledge the security warning"
	}
	if !fields.AcknowledgedBackup {
		errs[FieldAcknowledgedBackup] = "you must confirm that you backed up your seed phrase"
	}

	return model.ValidationResult{
		Valid:       len(errs) == 0,
		FieldErrors: errs,
	}
}
