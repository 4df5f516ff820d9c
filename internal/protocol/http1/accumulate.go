package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/buffer"
	"github.com/indigo-web/rawget/transport"
)

var (
	crlf       = []byte("\r\n")
	terminator = []byte("\r\n\r\n")
)

// Accumulate reads the client until the header block terminator (an empty line) is received.
// The block including the terminator is returned; whatever followed it in the same read is
// pushed back into the client, so the body decoder starts exactly at the first body byte.
// The returned slice is owned by buff and is valid until buff is cleared.
//
// If buff has a size limit, it also counts the body bytes received in the same read as the
// terminator.
func Accumulate(client transport.Client, buff *buffer.Buffer) ([]byte, error) {
	buff.Clear()

	for {
		data, err := client.Read()
		if len(data) > 0 {
			// the terminator might've been split between two reads
			from := max(buff.Len()-len(terminator)+1, 0)
			prevLen := buff.Len()

			if !buff.Append(data) {
				return nil, status.ErrHeaderBlockTooLarge
			}

			if boundary := bytes.Index(buff.Bytes()[from:], terminator); boundary != -1 {
				end := from + boundary + len(terminator)
				client.Pushback(data[end-prevLen:])
				buff.Truncate(end)

				return buff.Bytes(), nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, status.ErrConnectionClosed
			}

			return nil, fmt.Errorf("%w: %w", status.ErrSocket, err)
		}
	}
}
