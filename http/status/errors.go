package status

// HTTPError is an error carrying the status code it maps to. Errors that never reach
// the wire (client side, connection level) carry a zero code.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrShutdown = NewError(0, "server is shutting down")

	// ErrConnectionClosed is returned when the peer closes the connection before the
	// header block terminator was received.
	ErrConnectionClosed = NewError(0, "connection closed by peer")
	// ErrSocket wraps any non-EOF failure of the underlying connection.
	ErrSocket = NewError(0, "socket error")

	ErrTruncatedBody        = NewError(0, "connection closed before the whole body was received")
	ErrMalformedChunkedBody = NewError(0, "chunked body is malformed")
	ErrUnknownBodyFraming   = NewError(0, "neither content length nor chunked transfer encoding is given")

	ErrInvalidRequest      = NewError(BadRequest, "invalid request line")
	ErrHeaderBlockTooLarge = NewError(BadRequest, "header block is too large")
	ErrUnsupportedVersion  = NewError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrNotFound            = NewError(NotFound, "not found")
)
