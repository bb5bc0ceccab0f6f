// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// DataResetter wipes every persisted collection and reseeds the demo
// dataset relative to the current date.
type DataResetter interface {
	Reset(ctx context.Context) error
}
