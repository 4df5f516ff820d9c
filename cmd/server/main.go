// Command server serves the files of a directory over HTTP/1.1 until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/indigo-web/rawget"
	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
	"github.com/indigo-web/rawget/internal/address"
	"github.com/indigo-web/rawget/internal/logging"
)

const usage = "Usage: server PORT"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg := config.Default()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Static.Root, "root", cfg.Static.Root, "directory to serve files from")
	fs.IntVar(&cfg.Pool.Capacity, "capacity", cfg.Pool.Capacity, "maximal number of connections served at once")
	fs.BoolVar(&cfg.Compat.Legacy, "legacy", cfg.Compat.Legacy, "reproduce the quirks of the former server")
	fs.DurationVar(&cfg.NET.ReadTimeout, "timeout", cfg.NET.ReadTimeout, "read timeout per connection, 0 to disable")
	verbose := fs.Bool("v", false, "log every exchange")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 || cfg.Pool.Capacity <= 0 {
		fs.Usage()
		return 1
	}

	level := logging.Info
	if *verbose {
		level = logging.Debug
	}

	logger := logging.NewStd(stderr, "", level)

	app := rawget.New(address.FromPort(fs.Arg(0))).
		Tune(cfg).
		Logger(logger)

	if err := app.Bind(); err != nil {
		logger.Logf(logging.Error, "bind: %s", err)
		return 1
	}

	go func() {
		<-ctx.Done()
		logger.Logf(logging.Info, "interrupted, waiting for the clients to be served")
		app.GracefulStop()
	}()

	// ErrShutdown means the interrupt came before the accept loop started
	if err := app.Serve(); err != nil && !errors.Is(err, status.ErrShutdown) {
		logger.Logf(logging.Error, "%s", err)
		return 1
	}

	return 0
}
