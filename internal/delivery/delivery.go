// Package delivery defines the transport-layer abstraction started by the fx application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker) that serves until shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
