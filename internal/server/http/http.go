package http

import (
	"errors"
	"net"

	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/buffer"
	"github.com/indigo-web/rawget/internal/logging"
	"github.com/indigo-web/rawget/internal/protocol/http1"
	"github.com/indigo-web/rawget/transport"
)

// Server runs a single request-response exchange per connection.
type Server struct {
	cfg        *config.Config
	dispatcher *Dispatcher
	logger     logging.Logger
}

func NewServer(cfg *config.Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop{}
	}

	return &Server{
		cfg:        cfg,
		dispatcher: NewDispatcher(cfg.Static, cfg.Compat),
		logger:     logger,
	}
}

// HandleConn is the worker body: it wraps the connection and serves it.
func (s *Server) HandleConn(conn net.Conn) {
	client := transport.NewClient(conn, s.cfg.NET.ReadTimeout, make([]byte, s.cfg.NET.ReadBufferSize))
	s.Serve(client)
}

// Serve reads the request, writes the response(s) and closes the client. Failures never
// leave the exchange: they are logged, and the connection is closed.
func (s *Server) Serve(client transport.Client) {
	defer func() {
		_ = client.Close()
	}()

	netcfg := s.cfg.NET
	block, err := http1.Accumulate(client, buffer.New(netcfg.HeaderBlockSize.Default, netcfg.HeaderBlockSize.Maximal))
	if err != nil {
		s.logger.Logf(logging.Info, "%s: %s", client.Remote(), err)

		if !isProtocolError(err) {
			return
		}
	}

	var req http1.Request
	if err == nil {
		req, err = http1.ParseRequest(block)
	}

	serializer := http1.NewSerializer(client, make([]byte, 0, 128))
	for _, resp := range s.dispatcher.Dispatch(req, err) {
		if err = serializer.Write(resp); err != nil {
			s.logger.Logf(logging.Warn, "%s: write %d: %s", client.Remote(), resp.Code, err)
			return
		}

		if resp.Err != nil {
			s.logger.Logf(logging.Debug, "%s: %s %s %s -> %d: %s", client.Remote(), req.Method, req.Target, req.Version, resp.Code, resp.Err)
			continue
		}

		s.logger.Logf(logging.Debug, "%s: %s %s %s -> %d", client.Remote(), req.Method, req.Target, req.Version, resp.Code)
	}
}

// isProtocolError reports whether the peer should be answered, as opposed to the failures
// where it can't be.
func isProtocolError(err error) bool {
	var httpErr status.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code != 0
}
