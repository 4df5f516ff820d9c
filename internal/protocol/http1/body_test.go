package http1

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/transport/dummy"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestDecodeFixed(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, length := range []int{0, 1, 255, 256, 257, 4096, 10000} {
			var payload string
			if length > 0 {
				payload = uniuri.NewLen(length)
			}

			for _, piece := range []int{1, 7, 256, 100000} {
				client := dummy.NewMockClient(pieces(payload, piece)...).Once()
				sink := new(bytes.Buffer)
				require.NoError(t, DecodeFixed(client, int64(length), sink))
				require.Equal(t, payload, sink.String(), "length=%d piece=%d", length, piece)
			}
		}
	})

	t.Run("extra bytes are not consumed", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("Hello, world!")).Once()
		sink := new(bytes.Buffer)
		require.NoError(t, DecodeFixed(client, 5, sink))
		require.Equal(t, "Hello", sink.String())
		require.Equal(t, ", world!", string(client.Pending()))
	})

	t.Run("truncated", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("Hello")).Once()
		sink := new(bytes.Buffer)
		err := DecodeFixed(client, 13, sink)
		require.ErrorIs(t, err, status.ErrTruncatedBody)
		require.Equal(t, "Hello", sink.String())
	})

	t.Run("sink failure", func(t *testing.T) {
		boom := errors.New("disk full")
		client := dummy.NewMockClient([]byte("Hello")).Once()
		require.ErrorIs(t, DecodeFixed(client, 5, failingWriter{boom}), boom)
	})
}

func TestDecodeBody(t *testing.T) {
	t.Run("content length", func(t *testing.T) {
		const body = "Hello, world!"
		block := []byte("HTTP/1.1 200 OK\r\nContent-Length: " + strconv.Itoa(len(body)) + "\r\n\r\n")
		client := dummy.NewMockClient([]byte(body)).Once()
		sink := new(bytes.Buffer)
		require.NoError(t, DecodeBody(client, block, sink))
		require.Equal(t, body, sink.String())
	})

	t.Run("chunked", func(t *testing.T) {
		block := []byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n")
		client := dummy.NewMockClient([]byte("5\r\nHello\r\n0\r\n\r\n")).Once()
		sink := new(bytes.Buffer)
		require.NoError(t, DecodeBody(client, block, sink))
		require.Equal(t, "Hello", sink.String())
	})

	t.Run("unknown", func(t *testing.T) {
		block := []byte("HTTP/1.1 200 OK\r\nServer: x\r\n\r\n")
		client := dummy.NewMockClient([]byte("Hello")).Once()
		sink := new(bytes.Buffer)
		require.ErrorIs(t, DecodeBody(client, block, sink), status.ErrUnknownBodyFraming)
		require.Zero(t, sink.Len())
		require.Zero(t, client.Reads())
	})
}
