package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/hexconv"
	"github.com/indigo-web/rawget/transport"
)

type chunkedState uint8

const (
	eChunkLength chunkedState = iota
	eChunkBody
	eChunkBodyCRLF
	eChunkDone
)

// chunkLengthLineSize is the capacity for a chunk length line including its CRLF. This leaves
// at most 8 hexadecimal digits, limiting a single chunk by 4GiB.
const chunkLengthLineSize = 10

type chunkedDecoder struct {
	sink        io.Writer
	state       chunkedState
	line        [chunkLengthLineSize]byte
	lineLen     int
	chunkLength uint64
	crlfSeen    int
}

// DecodeChunked forwards the chunked body into the sink, stripping the framing. Decoding stops
// at the zero-length chunk; neither trailer fields nor the final CRLF are consumed. Chunk
// extensions aren't supported and are reported as status.ErrMalformedChunkedBody, as well as
// non-hexadecimal chunk lengths and chunks not terminated by CRLF. Whatever was read past the
// last chunk is pushed back.
func DecodeChunked(client transport.Client, sink io.Writer) error {
	decoder := chunkedDecoder{
		sink:  sink,
		state: eChunkLength,
	}

	for decoder.state != eChunkDone {
		data, err := client.Read()
		if len(data) == 0 {
			if err == nil {
				continue
			}

			return truncated(err)
		}

		extra, err := decoder.feed(data)
		if err != nil {
			return err
		}

		client.Pushback(extra)
	}

	return nil
}

func (c *chunkedDecoder) feed(data []byte) (extra []byte, err error) {
	for len(data) > 0 {
		switch c.state {
		case eChunkLength:
			if c.lineLen == len(c.line) {
				return nil, status.ErrMalformedChunkedBody
			}

			c.line[c.lineLen] = data[0]
			c.lineLen++
			data = data[1:]

			if c.lineLen < 2 || c.line[c.lineLen-2] != '\r' || c.line[c.lineLen-1] != '\n' {
				continue
			}

			length, ok := hexconv.ParseUint(c.line[:c.lineLen-2])
			if !ok {
				return nil, status.ErrMalformedChunkedBody
			}

			c.lineLen = 0
			if length == 0 {
				c.state = eChunkDone
				return data, nil
			}

			c.chunkLength = length
			c.state = eChunkBody
		case eChunkBody:
			n := min(c.chunkLength, uint64(len(data)))
			if _, err = c.sink.Write(data[:n]); err != nil {
				return nil, err
			}

			c.chunkLength -= n
			data = data[n:]

			if c.chunkLength == 0 {
				c.state = eChunkBodyCRLF
			}
		case eChunkBodyCRLF:
			if data[0] != crlf[c.crlfSeen] {
				return nil, status.ErrMalformedChunkedBody
			}

			data = data[1:]
			if c.crlfSeen++; c.crlfSeen == len(crlf) {
				c.crlfSeen = 0
				c.state = eChunkLength
			}
		case eChunkDone:
			return data, nil
		}
	}

	return nil, nil
}

var chunkedTerminator = []byte("0\r\n\r\n")

// EncodeChunked writes data as a chunked body, splitting it into chunks of at most chunkSize
// bytes, followed by the zero-length chunk.
func EncodeChunked(w io.Writer, data []byte, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = max(len(data), 1)
	}

	buff := make([]byte, 0, chunkSize+len("ffffffff\r\n\r\n"))

	for len(data) > 0 {
		n := min(chunkSize, len(data))
		buff = strconv.AppendUint(buff[:0], uint64(n), 16)
		buff = append(buff, crlf...)
		buff = append(buff, data[:n]...)
		buff = append(buff, crlf...)

		if _, err := w.Write(buff); err != nil {
			return err
		}

		data = data[n:]
	}

	_, err := w.Write(chunkedTerminator)
	return err
}
