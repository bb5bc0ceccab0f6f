package adapters

import (
	"sync"

	"github.com/ledgerly/backend/internal/application/adapter"
)

// SlotNotifier keeps only the most recent notification. Publishing a new
// notification replaces the previous one.
type SlotNotifier struct {
	mu     sync.Mutex
	latest *adapter.Notification
}

// NewSlotNotifier creates a new single-slot notifier.
func NewSlotNotifier() *SlotNotifier {
	return &SlotNotifier{}
}

// Notify replaces the current notification with the given one.
func (n *SlotNotifier) Notify(message string, level adapter.NotificationLevel) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = &adapter.Notification{Message: message, Level: level}
}

// Latest returns a copy of the current notification, or nil when none is set.
func (n *SlotNotifier) Latest() *adapter.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.latest == nil {
		return nil
	}
	copied := *n.latest
	return &copied
}

// Clear discards the current notification.
func (n *SlotNotifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = nil
}
