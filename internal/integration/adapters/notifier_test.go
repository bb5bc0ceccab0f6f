package adapters

import (
	"testing"

	"github.com/ledgerly/backend/internal/application/adapter"
)

func TestSlotNotifier(t *testing.T) {
	t.Run("empty notifier has no latest", func(t *testing.T) {
		n := NewSlotNotifier()
		if got := n.Latest(); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("a newer notification replaces the previous one", func(t *testing.T) {
		n := NewSlotNotifier()
		n.Notify("first", adapter.NotificationLevelSuccess)
		n.Notify("second", adapter.NotificationLevelWarning)

		got := n.Latest()
		if got == nil {
			t.Fatal("expected a notification")
		}
		if got.Message != "second" || got.Level != adapter.NotificationLevelWarning {
			t.Errorf("expected the latest notification, got %+v", got)
		}
	})

	t.Run("latest returns a copy", func(t *testing.T) {
		n := NewSlotNotifier()
		n.Notify("original", adapter.NotificationLevelSuccess)

		first := n.Latest()
		first.Message = "mutated"

		if got := n.Latest(); got.Message != "original" {
			t.Errorf("expected stored notification untouched, got %q", got.Message)
		}
	})

	t.Run("clear discards the slot", func(t *testing.T) {
		n := NewSlotNotifier()
		n.Notify("gone soon", adapter.NotificationLevelSuccess)
		n.Clear()

		if got := n.Latest(); got != nil {
			t.Errorf("expected nil after clear, got %+v", got)
		}
	})
}
