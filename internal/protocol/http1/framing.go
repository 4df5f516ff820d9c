package http1

import (
	"bytes"
	"strconv"

	"github.com/indigo-web/utils/uf"
)

type Mode uint8

const (
	Unknown Mode = iota
	ContentLength
	Chunked
)

func (m Mode) String() string {
	switch m {
	case ContentLength:
		return "content-length"
	case Chunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// Framing describes how the body following a header block is delimited. Length is set only
// for the ContentLength mode.
type Framing struct {
	Mode   Mode
	Length int64
}

var (
	chunkedMarker       = []byte("Transfer-Encoding: chunked")
	contentLengthPrefix = []byte("Content-Length: ")
)

// Classify walks the header block line by line and returns the framing declared by the
// first line mentioning it. Matching is case- and spacing-sensitive: a line must contain
// exactly "Transfer-Encoding: chunked" or start with "Content-Length: " followed by
// decimal digits.
func Classify(block []byte) Framing {
	for rest := block; len(rest) > 0; {
		var line []byte
		line, rest, _ = bytes.Cut(rest, crlf)

		if bytes.Contains(line, chunkedMarker) {
			return Framing{Mode: Chunked}
		}

		if length, ok := parseContentLength(line); ok {
			return Framing{Mode: ContentLength, Length: length}
		}
	}

	return Framing{Mode: Unknown}
}

func parseContentLength(line []byte) (int64, bool) {
	if !bytes.HasPrefix(line, contentLengthPrefix) {
		return 0, false
	}

	value := line[len(contentLengthPrefix):]
	digits := 0
	for digits < len(value) && value[digits] >= '0' && value[digits] <= '9' {
		digits++
	}

	if digits == 0 {
		return 0, false
	}

	length, err := strconv.ParseInt(uf.B2S(value[:digits]), 10, 64)
	return length, err == nil
}
