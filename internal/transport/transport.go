package transport

import (
	"io"
	"net"
)

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}

// Dispatcher handles exactly one request on a connection.
type Dispatcher interface {
	Dispatch(conn io.ReadWriter) error
}
