package http1

import (
	"bytes"

	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/utils/uf"
)

// MethodGET is the only method served.
const MethodGET = "GET"

// Request is the parsed request line. All the strings reference the header block they
// were parsed from, so they must not outlive it.
type Request struct {
	Method  string
	Target  string
	Version string
}

// ParseRequest parses the first line of the header block. Empty lines preceding it are
// skipped (RFC 9112, 2.2). The line must consist of exactly three space-separated tokens;
// repeating spaces are treated as one. The method isn't validated here. The rest of the
// header block is ignored.
func ParseRequest(block []byte) (req Request, err error) {
	for bytes.HasPrefix(block, crlf) {
		block = block[len(crlf):]
	}

	line, _, _ := bytes.Cut(block, crlf)

	var (
		tokens [3]string
		count  int
	)

	for len(line) > 0 {
		if line[0] == ' ' {
			line = line[1:]
			continue
		}

		if count == len(tokens) {
			return req, status.ErrInvalidRequest
		}

		end := bytes.IndexByte(line, ' ')
		if end == -1 {
			end = len(line)
		}

		tokens[count] = uf.B2S(line[:end])
		count++
		line = line[end:]
	}

	if count != len(tokens) {
		return req, status.ErrInvalidRequest
	}

	return Request{
		Method:  tokens[0],
		Target:  tokens[1],
		Version: tokens[2],
	}, nil
}
