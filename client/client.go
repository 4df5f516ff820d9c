package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/buffer"
	"github.com/indigo-web/rawget/internal/protocol/http1"
	"github.com/indigo-web/rawget/transport"
)

// Client performs one request per connection. It is safe for sequential use only.
type Client struct {
	cfg    *config.Config
	dialer net.Dialer
	render []byte
	header *buffer.Buffer
}

func New(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Client{
		cfg:    cfg,
		render: make([]byte, 0, 128),
		header: buffer.New(cfg.NET.HeaderBlockSize.Default, cfg.NET.HeaderBlockSize.Maximal),
	}
}

// Get sends the request, receives the header block and decodes the body into the sink. The
// returned response is filled as far as the exchange went: the metrics are always set, the
// header block only if it was received completely. Cancelling ctx aborts the exchange at
// any point, the returned error wraps ctx.Err() then.
func (c *Client) Get(ctx context.Context, req Request, sink io.Writer) (resp Response, err error) {
	timer := NewTimer()
	defer func() {
		timer.Done()
		resp.Metrics = timer.Metrics()
	}()

	conn, err := c.dialer.DialContext(ctx, "tcp", req.Addr())
	if err != nil {
		return resp, err
	}

	defer func() {
		_ = conn.Close()
	}()

	timer.Connected()

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return resp, err
		}
	}

	// a cancelled context interrupts any blocking read or write
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer func() {
		stop()
		if err != nil && ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ctx.Err(), err)
		}
	}()

	c.render = req.Render(c.render[:0])
	if _, err = conn.Write(c.render); err != nil {
		return resp, fmt.Errorf("%w: %w", status.ErrSocket, err)
	}

	timer.Sent()

	netcfg := c.cfg.NET
	client := transport.NewClient(conn, netcfg.ReadTimeout, make([]byte, netcfg.ReadBufferSize))
	block, err := http1.Accumulate(client, c.header)
	if err != nil {
		return resp, err
	}

	timer.Headers()
	resp = newResponse(block)

	return resp, http1.DecodeBody(client, block, sink)
}
