package validation

import (
	"testing"

	"github.com/AlexZinkM/wallet-session/internal/model"

	"github.com/stretchr/testify/assert"
)

func validFields() model.SignUpFields {
	return model.SignUpFields{
		Password:            "1234567890",
		SeedPhrase:          "bar",
		AccountName:         "testaccount",
		AcknowledgedWarning: true,
		AcknowledgedBackup:  true,
	}
}

func TestValidateAcceptsValidFields(t *testing.T) {
	result := Validate(validFields())
	assert.True(t, result.Valid)
	assert.Empty(t, result.FieldErrors)
	assert.NoError(t, result.Err())
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SignUpFields)
		field  string
	}{
		{"password 9 long", func(f *model.SignUpFields) { f.Password = "123456789" }, FieldPassword},
		{"empty password", func(f *model.SignUpFields) { f.Password = "" }, FieldPassword},
		{"account name 4 long", func(f *model.SignUpFields) { f.AccountName = "test" }, FieldAccountName},
		{"warning not acknowledged", func(f *model.SignUpFields) { f.AcknowledgedWarning = false }, FieldAcknowledgedWarning},
		{"backup not acknowledged", func(f *model.SignUpFields) { f.AcknowledgedBackup = false }, FieldAcknowledgedBackup},
		{"empty seed", func(f *model.SignUpFields) { f.SeedPhrase = "" }, FieldSeedPhrase},
		{"blank seed", func(f *model.SignUpFields) { f.SeedPhrase = "  \t " }, FieldSeedPhrase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			result := Validate(fields)
			assert.False(t, result.Valid)
			assert.Len(t, result.FieldErrors, 1)
			assert.Contains(t, result.FieldErrors, tt.field)
			assert.Error(t, result.Err())
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	fields := validFields()
	fields.Password = "1234567890"
	fields.AccountName = "abcde"
	assert.True(t, Validate(fields).Valid)

	// lengths are counted in characters, not bytes
	fields.Password = "ääääääääää"
	fields.AccountName = "ååååå"
	assert.True(t, Validate(fields).Valid)

	fields.Password = "äääääääää"
	assert.False(t, Validate(fields).Valid)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	result := Validate(model.SignUpFields{})
	assert.False(t, result.Valid)
	assert.Len(t, result.FieldErrors, 5)
}

func TestValidateDoesNotCheckSeedCorrectness(t *testing.T) {
	fields := validFields()
	fields.SeedPhrase = "not a real mnemonic at all"
	assert.True(t, Validate(fields).Valid)
}
