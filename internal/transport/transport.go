// Package transport declares the datagram send/receive boundary the game
// server and client are built against. Concrete realizations (UDP) live
// in subpackages; the game/dispatch logic never imports net directly.
package transport

import "context"

// Endpoint is an opaque handle to a remote party. Implementations must
// be comparable so they can key a map of connected players.
type Endpoint interface {
	String() string
}

// Transport is the datagram transport boundary: receive blocks for the
// next inbound packet, send is fire-and-forget.
type Transport interface {
	// ReceiveFrom blocks until a datagram arrives, ctx is canceled, or the
	// transport is closed.
	ReceiveFrom(ctx context.Context) (Endpoint, string, error)

	// SendTo delivers body to an endpoint. A closed or unreachable peer
	// must not be treated as fatal by callers — see spec.md §5 on
	// tolerating a closed endpoint silently.
	SendTo(to Endpoint, body string) error

	// Close releases the underlying socket.
	Close() error
}
