// Command client fetches a single page over HTTP/1.1 and prints its body to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/indigo-web/rawget/client"
	"github.com/indigo-web/rawget/config"
	"github.com/indigo-web/rawget/http/status"
)

const usage = "Usage: client [options] URL PORT"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	printRTT := fs.Bool("p", false, "print the round trip time after the body")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	req := client.NewRequest(fs.Arg(0), fs.Arg(1))
	resp, err := client.New(config.Default()).Get(ctx, req, stdout)
	if err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}

	if *printRTT {
		fmt.Fprintf(stdout, "\nRTT: %d microseconds\n", resp.Metrics.RTT())
	}

	return 0
}

// describe turns the error into a diagnostic line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, status.ErrMalformedChunkedBody):
		return "Chunked webpage was malformed"
	case errors.Is(err, status.ErrUnknownBodyFraming):
		return "Content length not given\nChunked encoding is not being used, exiting"
	case errors.Is(err, status.ErrConnectionClosed):
		return "Server closed connection"
	case errors.Is(err, context.Canceled):
		return "Interrupted"
	default:
		return err.Error()
	}
}
