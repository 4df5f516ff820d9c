package transport

import "net"

var _ Transport = new(TCP)

// Transport is an accepting side of the server.
type Transport interface {
	Listen(cb func(conn net.Conn)) error
	Stop()
	Wait()
	Addr() net.Addr
}
