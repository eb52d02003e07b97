// Package delivery defines the inbound transport contracts of the application.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today). Serve blocks until
// the server stops; shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
