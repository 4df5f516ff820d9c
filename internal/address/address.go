package address

import "net"

// FromPort turns the bare port, as the command line gets it, into an address to bind. The
// host is left empty, so the listener accepts both IPv4 and IPv6 connections wherever the
// system supports a dual-stack socket.
func FromPort(port string) string {
	return net.JoinHostPort("", port)
}
