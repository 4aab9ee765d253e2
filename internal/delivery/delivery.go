// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a long-running transport server started by the application lifecycle.
type Delivery interface {
	// Serve blocks, accepting requests until the context is cancelled.
	Serve(ctx context.Context) error
}
