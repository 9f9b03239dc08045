package model

import "errors"

// ErrAccountExists is matched (errors.Is) by key provider errors for an account name that is
// already taken
var ErrAccountExists = errors.New("account already exists")

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidationErrorResponse is returned when sign-up input is rejected.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}
