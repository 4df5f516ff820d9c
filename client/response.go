package client

import (
	"bytes"
	"strconv"

	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/protocol/http1"
	"github.com/indigo-web/utils/uf"
)

// Response holds the metadata of a received response. The body is never kept: it goes
// directly into the sink passed to Get.
type Response struct {
	// StatusLine is the first line of the response without the CRLF.
	StatusLine string
	// Code is zero if the status line is malformed. Nothing else depends on it: the body
	// is decoded regardless of the code.
	Code    status.Code
	Block   []byte
	Framing http1.Framing
	Metrics Metrics
}

func newResponse(block []byte) Response {
	line, _, _ := bytes.Cut(block, []byte("\r\n"))

	// the block is owned by a buffer that doesn't outlive the exchange
	block = bytes.Clone(block)

	return Response{
		StatusLine: string(line),
		Code:       parseCode(line),
		Block:      block,
		Framing:    http1.Classify(block),
	}
}

// parseCode extracts the code from a status line of form "<proto> <code> <text>".
func parseCode(line []byte) status.Code {
	_, rest, found := bytes.Cut(line, []byte(" "))
	if !found {
		return 0
	}

	code, _, _ := bytes.Cut(rest, []byte(" "))
	n, err := strconv.ParseUint(uf.B2S(code), 10, 16)
	if err != nil || len(code) != 3 {
		return 0
	}

	return status.Code(n)
}
