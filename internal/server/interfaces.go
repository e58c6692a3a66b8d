package server

import "net"

// Server defines the common lifecycle contract for servers managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listening server (HTTP or gRPC) bound at
// construction time.
// The owning [Servers] drives it through serve and Shutdown.
type transport interface {
	// serve blocks until the server stops; a graceful stop yields nil.
	serve() error

	// addr reports the bound listener address.
	addr() net.Addr

	name() string

	// Shutdown stops the server and closes its listener, whether or not
	// serve was ever called.
	Shutdown()
}
