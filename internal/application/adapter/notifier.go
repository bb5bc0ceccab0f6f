// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// NotificationLevel is the severity of a user-facing message.
type NotificationLevel string

const (
	NotificationLevelSuccess NotificationLevel = "success"
	NotificationLevelWarning NotificationLevel = "warning"
	NotificationLevelError   NotificationLevel = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Message string
	Level   NotificationLevel
}

// Notifier is a one-slot sink for the latest user-facing message. Each
// successful mutation overwrites the slot; presentation consumes and clears
// it. Display timing is a presentation concern and does not live here.
type Notifier interface {
	// Notify overwrites the slot with the given message.
	Notify(message string, level NotificationLevel)

	// Latest returns the current message, or nil when the slot is empty.
	Latest() *Notification

	// Clear empties the slot.
	Clear()
}
