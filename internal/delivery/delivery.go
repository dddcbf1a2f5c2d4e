// Package delivery defines the transport-facing entry points of the
// application.
package delivery

import "context"

// Delivery is a serving surface started by main and stopped through the fx
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
