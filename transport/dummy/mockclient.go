package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/rawget/transport"
)

var _ transport.Client = new(Client)

// Client returns the pieces it was initialised with, one per read, and then io.EOF (or the
// error set via FailWith). Unless set to shoot once, it starts over instead. It also tracks
// all the written data, making it thereby a universal mock suitable for most of the tests.
type Client struct {
	closed     bool
	once       bool
	journaling bool
	pointer    int
	tmp        []byte
	written    []byte
	data       [][]byte
	reads      int
	failure    error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		journaling: true,
		failure:    io.EOF,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if c.once || len(c.data) == 0 {
			return nil, c.failure
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++
	c.reads++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

// Pending returns the data pushed back and not read yet.
func (c *Client) Pending() []byte {
	return c.tmp
}

func (c *Client) Write(p []byte) (int, error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Once disables looping over the pieces.
func (c *Client) Once() *Client {
	c.once = true
	return c
}

// FailWith sets the error returned once the pieces are exhausted.
func (c *Client) FailWith(err error) *Client {
	c.once = true
	c.failure = err
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}

func (c *Client) Closed() bool {
	return c.closed
}

// Reads returns how many pieces were consumed from the underlying data, not counting
// the pushed back ones.
func (c *Client) Reads() int {
	return c.reads
}
