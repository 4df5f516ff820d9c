package http

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/protocol/http1"
	"github.com/stretchr/testify/require"
)

// newWebroot creates a root directory with the files, named by slash-separated paths.
func newWebroot(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

func newDispatcher(root string, legacy bool) *Dispatcher {
	cfg := config.Default()
	cfg.Static.Root = root
	cfg.Compat.Legacy = legacy

	return NewDispatcher(cfg.Static, cfg.Compat)
}

func get(target, version string) http1.Request {
	return http1.Request{Method: "GET", Target: target, Version: version}
}

func requireSingle(t *testing.T, want http1.Response, got []http1.Response) {
	require.Len(t, got, 1)
	require.Equal(t, want.Code, got[0].Code)
	require.Equal(t, string(want.Body), string(got[0].Body))
}

func TestDispatcher(t *testing.T) {
	root := newWebroot(t, map[string]string{
		"index.html":      "<h1>index</h1>",
		"hello.txt":       "Hello, world!",
		"docs/index.html": "<h1>docs</h1>",
		"empty":           "",
	})
	d := newDispatcher(root, false)

	t.Run("file", func(t *testing.T) {
		resp := d.Dispatch(get("/hello.txt", "HTTP/1.1"), nil)
		requireSingle(t, http1.Response{Code: status.OK, Body: []byte("Hello, world!")}, resp)
		require.NoError(t, resp[0].Err)
	})

	t.Run("index fallback", func(t *testing.T) {
		require.Equal(t, root+"/index.html", d.Path("/"))
		requireSingle(t, http1.Response{Code: status.OK, Body: []byte("<h1>index</h1>")},
			d.Dispatch(get("/", "HTTP/1.1"), nil))
		requireSingle(t, http1.Response{Code: status.OK, Body: []byte("<h1>docs</h1>")},
			d.Dispatch(get("/docs/", "HTTP/1.0"), nil))
	})

	t.Run("target without leading slash", func(t *testing.T) {
		require.Equal(t, root+"/hello.txt", d.Path("hello.txt"))
		requireSingle(t, http1.Response{Code: status.OK, Body: []byte("Hello, world!")},
			d.Dispatch(get("hello.txt", "HTTP/1.1"), nil))
	})

	t.Run("empty file", func(t *testing.T) {
		requireSingle(t, http1.Response{Code: status.OK}, d.Dispatch(get("/empty", "HTTP/1.1"), nil))
	})

	t.Run("not found", func(t *testing.T) {
		resp := d.Dispatch(get("/missing.html", "HTTP/1.1"), nil)
		requireSingle(t, notFound, resp)
		require.Len(t, notFound.Body, 13)
		require.ErrorIs(t, resp[0].Err, status.ErrNotFound)
		require.ErrorIs(t, resp[0].Err, os.ErrNotExist)
	})

	t.Run("directory without trailing slash", func(t *testing.T) {
		requireSingle(t, notFound, d.Dispatch(get("/docs", "HTTP/1.1"), nil))
	})

	t.Run("path traversal", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
		t.Cleanup(func() {
			_ = os.Remove(outside)
		})

		requireSingle(t, notFound, d.Dispatch(get("/../secret.txt", "HTTP/1.1"), nil))
		requireSingle(t, notFound, d.Dispatch(get("/../../etc/passwd", "HTTP/1.1"), nil))
		resp := d.Dispatch(get("/docs/../hello.txt", "HTTP/1.1"), nil)
		requireSingle(t, notFound, resp)
		require.ErrorIs(t, resp[0].Err, status.ErrNotFound)
	})

	t.Run("bad request", func(t *testing.T) {
		requireSingle(t, badRequest, d.Dispatch(http1.Request{}, status.ErrInvalidRequest))
		requireSingle(t, badRequest, d.Dispatch(http1.Request{}, errors.New("anything")))
		requireSingle(t, badRequest, d.Dispatch(get("/hello.txt", "HTTX/1.1"), nil))
		requireSingle(t, badRequest, d.Dispatch(get("/hello.txt", "HTTP/abc"), nil))
		require.Len(t, badRequest.Body, 15)

		resp := d.Dispatch(http1.Request{}, status.ErrHeaderBlockTooLarge)
		require.ErrorIs(t, resp[0].Err, status.ErrHeaderBlockTooLarge)
	})

	t.Run("unsupported method", func(t *testing.T) {
		req := http1.Request{Method: "POST", Target: "/hello.txt", Version: "HTTP/1.1"}
		resp := d.Dispatch(req, nil)
		requireSingle(t, badRequest, resp)
		require.ErrorIs(t, resp[0].Err, status.ErrInvalidRequest)
	})

	t.Run("unsupported version", func(t *testing.T) {
		requireSingle(t, versionNotSupported, d.Dispatch(get("/hello.txt", "HTTP/2"), nil))
		resp := d.Dispatch(get("/hello.txt", "HTTP/1.2"), nil)
		requireSingle(t, versionNotSupported, resp)
		require.ErrorIs(t, resp[0].Err, status.ErrUnsupportedVersion)
	})
}

func TestDispatcher_Legacy(t *testing.T) {
	root := newWebroot(t, map[string]string{
		"hello.txt": "Hello, world!",
	})
	d := newDispatcher(root, true)

	t.Run("content length overhead", func(t *testing.T) {
		resp := d.Dispatch(get("/hello.txt", "HTTP/1.1"), nil)
		require.Len(t, resp, 1)
		require.Equal(t, status.OK, resp[0].Code)
		require.Equal(t, "Hello, world!\x00", string(resp[0].Body))
	})

	t.Run("505 falls through", func(t *testing.T) {
		resp := d.Dispatch(get("/hello.txt", "HTTP/2.0"), nil)
		require.Len(t, resp, 2)
		require.Equal(t, status.HTTPVersionNotSupported, resp[0].Code)
		require.Equal(t, status.OK, resp[1].Code)

		resp = d.Dispatch(get("/missing", "HTTP/2.0"), nil)
		require.Len(t, resp, 2)
		require.Equal(t, status.NotFound, resp[1].Code)
	})

	t.Run("errors are not padded", func(t *testing.T) {
		requireSingle(t, notFound, d.Dispatch(get("/missing", "HTTP/1.1"), nil))
	})
}

func TestNewDispatcher_RelativeRoot(t *testing.T) {
	d := newDispatcher("../srv", false)
	require.NotContains(t, d.Path("/index.html"), "..")
}
