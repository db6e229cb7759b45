// Command socialreach finds the most popular person in a social graph and how
// much of the graph they reach within a few hops.
//
//	socialreach run --nodes nodes.csv --edges edges.csv --max-hops 3
//	socialreach popular --nodes nodes.csv --edges edges.csv
//	socialreach reach --nodes nodes.csv --edges edges.csv Alice Bob
//	socialreach generate --kind star --n 100 --out-nodes n.csv --out-edges e.csv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/socialreach/config"
	"github.com/katalvlaran/socialreach/ingest"
	"github.com/katalvlaran/socialreach/reach"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitBadInput   = 2
	exitNoSuchName = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes one command line and maps its error to an exit code.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	a := newApp(stdout)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if werr := a.flushMetrics(); werr != nil {
		fmt.Fprintln(stderr, "socialreach:", werr)
	}
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(stderr, "socialreach:", err)

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, reach.ErrStartNotFound):
		return exitNoSuchName
	case errors.Is(err, ingest.ErrMalformedRow),
		errors.Is(err, ingest.ErrInvalidLayout),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, config.ErrMissingInput):
		return exitBadInput
	default:
		return exitFailure
	}
}
