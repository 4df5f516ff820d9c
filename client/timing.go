package client

import (
	"fmt"
	"time"
)

// Metrics captures the timings of a single exchange.
type Metrics struct {
	// Connect is the time spent establishing the TCP connection, including the name resolution.
	Connect time.Duration
	// TTFB is the time between sending the request and receiving the whole header block.
	TTFB time.Duration
	// Total is the round trip time: from the start of the dial until the body is decoded.
	Total time.Duration
}

// RTT returns the round trip time in microseconds.
func (m Metrics) RTT() int64 {
	return m.Total.Microseconds()
}

func (m Metrics) String() string {
	return fmt.Sprintf("Connect: %v, TTFB: %v, Total: %v", m.Connect, m.TTFB, m.Total)
}

// Timer helps measure request timings.
type Timer struct {
	start     time.Time
	connected time.Time
	sent      time.Time
	headers   time.Time
	done      time.Time
}

// NewTimer creates a new timing measurement session.
func NewTimer() *Timer {
	return &Timer{
		start: time.Now(),
	}
}

// Connected marks the end of dialing.
func (t *Timer) Connected() {
	t.connected = time.Now()
}

// Sent marks the moment the request is written.
func (t *Timer) Sent() {
	t.sent = time.Now()
}

// Headers marks the moment the header block is received.
func (t *Timer) Headers() {
	t.headers = time.Now()
}

// Done marks the end of the exchange.
func (t *Timer) Done() {
	t.done = time.Now()
}

// Metrics returns the calculated timings. Total is measured until now, unless Done was called.
func (t *Timer) Metrics() Metrics {
	end := t.done
	if end.IsZero() {
		end = time.Now()
	}

	m := Metrics{
		Total: end.Sub(t.start),
	}

	if !t.connected.IsZero() {
		m.Connect = t.connected.Sub(t.start)
	}

	if !t.sent.IsZero() && !t.headers.IsZero() {
		m.TTFB = t.headers.Sub(t.sent)
	}

	return m
}
