// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/ledgerly/backend/internal/application/adapter"

// NotificationResponse represents the latest user-facing message.
type NotificationResponse struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

// ToNotificationResponse converts a notification to a response DTO.
func ToNotificationResponse(n *adapter.Notification) NotificationResponse {
	return NotificationResponse{
		Message: n.Message,
		Level:   string(n.Level),
	}
}
