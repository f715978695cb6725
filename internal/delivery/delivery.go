// Package delivery defines the contract shared by every transport server the
// application starts.
package delivery

import "context"

// Delivery is a long-running server started by the entrypoint. Serve blocks
// until the server stops; shutdown happens through the fx lifecycle hooks each
// implementation registers.
type Delivery interface {
	Serve(ctx context.Context) error
}
