package transport

import (
	"errors"
	"net"
	"sync/atomic"

	"github.com/indigo-web/rawget/internal/logging"
)

// TCP accepts connections and hands each of them to a worker from the slot pool. When the
// pool is exhausted, the connection is closed right away without any data written.
type TCP struct {
	l      net.Listener
	pool   *Pool
	stop   *atomic.Bool
	logger logging.Logger
}

func NewTCP(l net.Listener, capacity int, logger logging.Logger) *TCP {
	if logger == nil {
		logger = logging.Nop{}
	}

	return &TCP{
		l:      l,
		pool:   NewPool(capacity),
		stop:   new(atomic.Bool),
		logger: logger,
	}
}

// Bind resolves the address and starts listening on it.
func Bind(addr string) (net.Listener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

// Listen runs the accept loop until Stop is called, in which case nil is returned, or the
// listener fails. The callback owns the connection, however closing it isn't necessary,
// as it's closed anyway right after the callback returns. Running workers aren't waited
// for, use Wait for this.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	for {
		conn, err := t.l.Accept()
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return err
		}

		id, ok := t.pool.Acquire()
		if !ok {
			t.logger.Logf(logging.Warn, "all %d slots are busy, dropping %s", t.pool.Cap(), conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		t.logger.Logf(logging.Debug, "slot %d: serving %s", id, conn.RemoteAddr())
		t.pool.Go(id, func() {
			cb(conn)
			_ = conn.Close()
		})
	}
}

// Stop closes the listener, which interrupts the pending Accept call. Connections already
// accepted are not affected. Safe to be called multiple times and concurrently.
func (t *TCP) Stop() {
	if t.stop.CompareAndSwap(false, true) {
		_ = t.l.Close()
	}
}

// Wait blocks until every worker has finished. Must be called only after Listen returned.
func (t *TCP) Wait() {
	t.pool.Wait()
}

func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Running returns the number of connections being served at the moment. It's an
// approximation, as workers may finish concurrently.
func (t *TCP) Running() int {
	return t.pool.Running()
}
