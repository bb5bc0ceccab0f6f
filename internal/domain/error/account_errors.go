// Package error defines domain-specific errors for the Ledgerly backend.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAccountName is returned when the account name is empty.
	ErrInvalidAccountName = errors.New("account name cannot be empty")

	// ErrInvalidOpeningBalance is returned when the opening balance cannot be parsed.
	ErrInvalidOpeningBalance = errors.New("invalid opening balance")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountType     AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountName     AccountErrorCode = "ACC-010003"
	ErrCodeInvalidOpeningBalance  AccountErrorCode = "ACC-010004"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
