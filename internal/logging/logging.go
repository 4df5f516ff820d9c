package logging

import (
	"io"
	"log"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the only logging surface the server and the client depend on.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Logf(Level, string, ...any) {}

// Std adapts the standard library logger. Records below Min are dropped.
type Std struct {
	L      *log.Logger
	Min    Level
	Prefix string
}

// NewStd returns a logger writing to w with the standard flags.
func NewStd(w io.Writer, prefix string, minLevel Level) Std {
	return Std{
		L:      log.New(w, "", log.LstdFlags),
		Min:    minLevel,
		Prefix: prefix,
	}
}

func (s Std) Logf(level Level, format string, args ...any) {
	if s.L == nil || level < s.Min {
		return
	}

	if s.Prefix != "" {
		s.L.Printf("%s[%s] "+format, append([]any{s.Prefix, level}, args...)...)
		return
	}

	s.L.Printf("[%s] "+format, append([]any{level}, args...)...)
}
