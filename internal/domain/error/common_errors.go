// Package error defines domain-specific errors for the Ledgerly backend.
package error

import "errors"

// Cross-cutting errors.
var (
	// ErrRateLimited is returned when a client exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// ErrCodeRateLimited identifies a rate-limited request in API responses.
const ErrCodeRateLimited = "GEN-010001"
