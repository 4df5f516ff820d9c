package client

import (
	"net"
	"strings"

	"github.com/indigo-web/rawget/http/proto"
	"github.com/indigo-web/rawget/internal/protocol/http1"
	"github.com/indigo-web/utils/uf"
)

const UserAgent = "rawget/1.0"

// Request is a single GET for a path on a host.
type Request struct {
	Host string
	Port string
	// Path is everything after the host, without the leading slash.
	Path string
}

// NewRequest splits the URL of form host[/path] at the first slash. No scheme is expected.
func NewRequest(url, port string) Request {
	host, path, _ := strings.Cut(url, "/")

	return Request{
		Host: host,
		Port: port,
		Path: path,
	}
}

func (r Request) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Render appends the request to buff.
func (r Request) Render(buff []byte) []byte {
	buff = append(buff, http1.MethodGET...)
	buff = append(buff, " /"...)
	buff = append(buff, r.Path...)
	buff = append(buff, ' ')
	buff = append(buff, proto.HTTP11...)
	buff = append(buff, "\r\nHost: "...)
	buff = append(buff, r.Host...)
	buff = append(buff, "\r\nUser-Agent: "+UserAgent+"\r\nConnection: close\r\n\r\n"...)

	return buff
}

func (r Request) String() string {
	return uf.B2S(r.Render(nil))
}
