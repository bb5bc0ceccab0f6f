// Package error defines domain-specific errors for the Ledgerly backend.
package error

import "errors"

// Storage errors.
var (
	// ErrKeyNotFound is returned by a key-value store when no value has been
	// persisted under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrResetNotConfirmed is returned when a data reset is requested without
	// the explicit confirmation flag.
	ErrResetNotConfirmed = errors.New("data reset requires explicit confirmation")
)
