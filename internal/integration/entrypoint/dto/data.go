// Package dto defines data transfer objects for API requests and responses.
package dto

// ResetDataRequest represents the request body for a data reset. The
// confirmation flag must be set explicitly.
type ResetDataRequest struct {
	Confirm bool `json:"confirm"`
}
