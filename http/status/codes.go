package status

type (
	Code   uint16
	Status string
)

// Only the codes the file server ever responds with are listed.
const (
	OK                      Code = 200 // RFC 9110, 15.3.1
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	NotFound                Code = 404 // RFC 9110, 15.5.5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// Text returns the reason phrase for the code. Note that the phrases for 404 and 505 differ
// from the registered ones, as peers already depend on them. Empty string is returned for
// unknown codes.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "File Not Found"
	case HTTPVersionNotSupported:
		return "Version Not Supported"
	default:
		return ""
	}
}
