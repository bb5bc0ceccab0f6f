// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies "now" to period-window computations so tests can pin it.
type Clock interface {
	Now() time.Time
}
