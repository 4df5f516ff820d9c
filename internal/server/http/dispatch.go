package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/proto"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/protocol/http1"
)

var (
	badRequest = http1.Response{
		Code: status.BadRequest,
		Body: []byte("400 Bad Request"),
		Err:  status.ErrInvalidRequest,
	}
	notFound = http1.Response{
		Code: status.NotFound,
		Body: []byte("404 Not Found"),
		Err:  status.ErrNotFound,
	}
	versionNotSupported = http1.Response{
		Code: status.HTTPVersionNotSupported,
		Err:  status.ErrUnsupportedVersion,
	}
)

func withErr(resp http1.Response, err error) http1.Response {
	resp.Err = err
	return resp
}

// Dispatcher maps requests onto files of the root directory.
type Dispatcher struct {
	root   string
	index  string
	legacy bool
}

func NewDispatcher(static config.Static, compat config.Compat) *Dispatcher {
	root := static.Root
	// otherwise every composed path would be rejected by the traversal check
	if strings.Contains(root, "..") {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}

	return &Dispatcher{
		root:   root,
		index:  static.Index,
		legacy: compat.Legacy,
	}
}

// Dispatch returns the responses to be written in order. It's always a single one, except
// for the legacy mode, where 505 is followed by the regular file response. parseErr is the
// error occurred while reading or parsing the request, if any.
func (d *Dispatcher) Dispatch(req http1.Request, parseErr error) []http1.Response {
	if parseErr != nil {
		return []http1.Response{withErr(badRequest, parseErr)}
	}

	if req.Method != http1.MethodGET {
		return []http1.Response{withErr(badRequest, fmt.Errorf("%w: method %s", status.ErrInvalidRequest, req.Method))}
	}

	version, ok := proto.ParseVersion(req.Version)
	if !ok {
		return []http1.Response{badRequest}
	}

	if !proto.Supported(version) {
		if !d.legacy {
			return []http1.Response{versionNotSupported}
		}

		return []http1.Response{versionNotSupported, d.serveFile(req.Target)}
	}

	return []http1.Response{d.serveFile(req.Target)}
}

// Path composes the file path for the target. No normalization is done.
func (d *Dispatcher) Path(target string) string {
	var path strings.Builder
	path.Grow(len(d.root) + 1 + len(target) + len(d.index))
	path.WriteString(d.root)

	if !strings.HasPrefix(target, "/") {
		path.WriteByte('/')
	}

	path.WriteString(target)

	if strings.HasSuffix(target, "/") {
		path.WriteString(d.index)
	}

	return path.String()
}

func (d *Dispatcher) serveFile(target string) http1.Response {
	path := d.Path(target)
	// a plain substring check, so even harmless names like "a..b" are refused
	if strings.Contains(path, "..") {
		return withErr(notFound, fmt.Errorf("%w: %s: path traversal", status.ErrNotFound, path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return withErr(notFound, fmt.Errorf("%w: %w", status.ErrNotFound, err))
	}

	if d.legacy {
		content = append(content, 0)
	}

	return http1.Response{
		Code: status.OK,
		Body: content,
	}
}
