package rawget

import (
	"net"
	"sync"

	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/logging"
	"github.com/indigo-web/rawget/internal/server/http"
	"github.com/indigo-web/rawget/transport"
)

// App is the static file server: a listener, the slot pool and the HTTP exchange served
// over every accepted connection.
type App struct {
	addr   string
	cfg    *config.Config
	logger logging.Logger
	hooks  hooks

	mu        sync.Mutex
	listener  net.Listener
	transport transport.Transport
	stopped   bool
}

// New returns a new App instance. An address consisting only of a port is bound on
// all the interfaces, both IPv4 and IPv6.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: logging.Nop{},
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger used by both the accept loop and the connection workers.
func (a *App) Logger(logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}

	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and the accept
// loop is about to start.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment the server is down. It's guaranteed that
// at this moment no new connections are accepted and all the clients are already disconnected.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Bind starts listening without accepting connections yet. Calling it is optional, as Serve
// binds by itself, but it makes Addr available before Serve is called.
func (a *App) Bind() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.bind()
}

func (a *App) bind() error {
	if a.listener != nil {
		return nil
	}

	l, err := transport.Bind(a.addr)
	if err != nil {
		return err
	}

	a.listener = l
	return nil
}

// Serve runs the server until GracefulStop is called or the listener fails. Before returning,
// it waits for every connection being served to be finished.
func (a *App) Serve() error {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return status.ErrShutdown
	}

	if err := a.bind(); err != nil {
		a.mu.Unlock()
		return err
	}

	tcp := transport.NewTCP(a.listener, a.cfg.Pool.Capacity, a.logger)
	a.transport = tcp
	a.mu.Unlock()

	server := http.NewServer(a.cfg, a.logger)

	a.logger.Logf(logging.Info, "listening on %s, serving %s", tcp.Addr(), a.cfg.Static.Root)
	callIfNotNil(a.hooks.OnStart)

	err := tcp.Listen(server.HandleConn)
	if err != nil {
		a.logger.Logf(logging.Error, "accept: %s", err)
		// otherwise the listener stays open
		tcp.Stop()
	}

	tcp.Wait()
	a.logger.Logf(logging.Info, "all connections are closed, shutting down")
	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving already accepted ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may be still working. Serve returns when it's done.
func (a *App) GracefulStop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true

	switch {
	case a.transport != nil:
		a.transport.Stop()
	case a.listener != nil:
		_ = a.listener.Close()
	}
}

// Addr returns the bound address, or nil if the App isn't bound yet.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.listener == nil {
		return nil
	}

	return a.listener.Addr()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
