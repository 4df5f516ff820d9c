package http1

import (
	"fmt"
	"io"

	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/transport"
)

// DecodeBody classifies the header block and streams the body following it into the sink.
// Reads are bounded by the client's read buffer, and each of them is forwarded to the sink
// as soon as it's received.
func DecodeBody(client transport.Client, block []byte, sink io.Writer) error {
	framing := Classify(block)

	switch framing.Mode {
	case ContentLength:
		return DecodeFixed(client, framing.Length, sink)
	case Chunked:
		return DecodeChunked(client, sink)
	default:
		return status.ErrUnknownBodyFraming
	}
}

// DecodeFixed forwards exactly n bytes into the sink. Bytes read past n are pushed back.
// If the stream ends earlier, status.ErrTruncatedBody is returned. No retries are made.
func DecodeFixed(client transport.Client, n int64, sink io.Writer) error {
	for n > 0 {
		data, err := client.Read()
		if len(data) == 0 {
			if err == nil {
				continue
			}

			return truncated(err)
		}

		if int64(len(data)) > n {
			client.Pushback(data[n:])
			data = data[:n]
		}

		n -= int64(len(data))

		if _, err = sink.Write(data); err != nil {
			return err
		}
	}

	return nil
}

func truncated(cause error) error {
	return fmt.Errorf("%w: %w", status.ErrTruncatedBody, cause)
}
