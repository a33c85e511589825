package ktarget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/birdayz/ktarget/kdef"
	"github.com/birdayz/ktarget/kexec"
	"github.com/birdayz/ktarget/pkg/log"
)

// Exit codes returned by Main.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrUsage wraps command line errors.
var ErrUsage = errors.New("invalid usage")

// Main runs a build program for the catalog and returns its exit code. args
// excludes the program name. Interrupts cancel running targets.
//
//	func main() {
//		os.Exit(ktarget.Main(catalog, os.Args[1:]))
//	}
func Main(c *kdef.Catalog, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, c, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, c *kdef.Catalog, args []string, stdout, stderr io.Writer) int {
	parsed, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\nUsage:\n%s", err, Usage())
		return ExitUsage
	}

	logger := log.NewLogr(stderr, parsed.Verbosity)

	opts := append(parsed.Options(), WithLogr(logger), WithOutput(stdout))
	app, err := New(c, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	switch {
	case parsed.Help:
		err = app.WriteHelp()
		if err == nil {
			_, err = fmt.Fprintf(stdout, "\nFlags:\n%s", Usage())
		}
	case parsed.Plan:
		err = app.WritePlan(parsed.Targets)
	default:
		var report *kexec.Report
		report, err = app.Run(ctx, parsed.Targets)
		if report == nil {
			break
		}
		if err != nil {
			logger.Error(err, "Build failed")
			return ExitFailure
		}
		logger.Info("Build succeeded", "targets", len(report.Targets))
		return ExitOK
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitOK
}
