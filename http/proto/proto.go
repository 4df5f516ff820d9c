package proto

import (
	"strconv"
	"strings"
)

// HTTP11 is the protocol every response is written with.
const HTTP11 = "HTTP/1.1"

// MaxSupported is the greatest version number served. Requests declaring a greater one
// are answered with 505.
const MaxSupported = 1.1

const httpScheme = "HTTP/"

// ParseVersion extracts the version number out of a "HTTP/<number>" token. Only the
// numeric prefix after the scheme is taken into account, so "HTTP/1.1abc" is still
// version 1.1. False is returned if the scheme is missing or no number follows.
func ParseVersion(token string) (version float64, ok bool) {
	if !strings.HasPrefix(token, httpScheme) {
		return 0, false
	}

	number := token[len(httpScheme):]
	end, dot := 0, false

	for ; end < len(number); end++ {
		switch c := number[end]; {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			goto parse
		}
	}

parse:
	number = number[:end]
	if len(number) == 0 || number == "." {
		return 0, false
	}

	version, err := strconv.ParseFloat(number, 64)
	return version, err == nil
}

// Supported reports whether the version can be served.
func Supported(version float64) bool {
	return version <= MaxSupported
}
