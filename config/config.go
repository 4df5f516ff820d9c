package config

import "time"

type (
	HeaderBlockSize struct {
		Default int
		Maximal int `test:"nullable"`
	}
)

type (
	NET struct {
		// ReadBufferSize is the size of the buffer used for every read from the socket. It also
		// bounds how many body bytes are forwarded to the sink at once.
		ReadBufferSize int
		// ReadTimeout sets a deadline before every read. Zero disables deadlines, so a silent
		// peer keeps its worker busy until it closes the connection.
		ReadTimeout time.Duration `test:"nullable"`
		// HeaderBlockSize is the initial capacity of the buffer accumulating the header block.
		// The buffer doubles every time it overflows. Maximal limits the growth; zero means
		// no limit at all.
		HeaderBlockSize HeaderBlockSize
	}

	Pool struct {
		// Capacity is the maximal number of connections served simultaneously. Connections
		// accepted while all the slots are busy are closed immediately.
		Capacity int
	}

	Static struct {
		// Root is the directory files are served from.
		Root string
		// Index is appended to targets ending with a slash.
		Index string
	}

	Compat struct {
		// Legacy reproduces two quirks of the former implementation: the 200 response
		// declares Content-Length one byte greater than the file (the extra byte is NUL),
		// and a 505 response is followed by the regular file lookup and a second response.
		Legacy bool `test:"nullable"`
	}
)

// Config holds settings used across the server and the client.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET    NET
	Pool   Pool
	Static Static
	Compat Compat
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 256,
			ReadTimeout:    0,
			HeaderBlockSize: HeaderBlockSize{
				Default: 2 * 1024,
				Maximal: 0,
			},
		},
		Pool: Pool{
			Capacity: 20,
		},
		Static: Static{
			Root:  "./srv",
			Index: "index.html",
		},
		Compat: Compat{
			Legacy: false,
		},
	}
}
