// Package delivery defines the contract every serving surface of the
// application fulfills, HTTP and background workers alike.
package delivery

import "context"

// Delivery is a long-running serving component started by main. Serve
// blocks until the component stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
