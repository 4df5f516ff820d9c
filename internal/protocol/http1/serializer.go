package http1

import (
	"strconv"

	"github.com/indigo-web/rawget/http/proto"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/transport"
)

// Response is a complete reply. Every response is sized and closes the connection.
type Response struct {
	Code status.Code
	Body []byte
	// Err is the reason of an error response. It's never written.
	Err error
}

type Serializer struct {
	client transport.Client
	buff   []byte
}

func NewSerializer(client transport.Client, buff []byte) *Serializer {
	return &Serializer{
		client: client,
		buff:   buff[:0],
	}
}

// Write renders the status line and headers into the buffer and writes them, followed by
// the body.
func (s *Serializer) Write(resp Response) error {
	s.buff = append(s.buff[:0], proto.HTTP11...)
	s.buff = append(s.buff, ' ')
	s.buff = strconv.AppendUint(s.buff, uint64(resp.Code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, status.Text(resp.Code)...)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(len(resp.Body)), 10)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, "Connection: close"...)
	s.buff = append(s.buff, terminator...)

	if _, err := s.client.Write(s.buff); err != nil {
		return err
	}

	if len(resp.Body) == 0 {
		return nil
	}

	_, err := s.client.Write(resp.Body)
	return err
}
