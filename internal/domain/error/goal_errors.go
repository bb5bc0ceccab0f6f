// Package error defines domain-specific errors for the Ledgerly backend.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("goal name cannot be empty")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidGoalDeadline is returned when the deadline is malformed.
	ErrInvalidGoalDeadline = errors.New("invalid goal deadline")

	// ErrInvalidGoalDelta is returned when the add-money amount cannot be parsed.
	ErrInvalidGoalDelta = errors.New("invalid goal contribution amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalName     GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalDeadline GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalDelta    GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
