// Package delivery holds the inbound surfaces of the service: the alert HTTP API and the
// Pub/Sub worker.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
