// Package error defines domain-specific errors for the Ledgerly backend.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the budget limit is not positive.
	ErrInvalidBudgetLimit = errors.New("budget limit must be greater than zero")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("budget period must be 'monthly' or 'yearly'")

	// ErrInvalidBudgetCategory is returned when the budget category is empty.
	ErrInvalidBudgetCategory = errors.New("budget category cannot be empty")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound        BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetLimit    BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-010004"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
