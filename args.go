package ktarget

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Args is a parsed command line.
type Args struct {
	// Targets are the invoked target names, in the order given.
	Targets []string

	// Skip is nil unless --skip was given. "--skip=" yields an empty slice,
	// which skips every target that is not invoked.
	Skip []string

	Strict      bool
	Plan        bool
	Help        bool
	Parallelism int
	Verbosity   int
}

// Options turns the parsed flags into App options.
func (a *Args) Options() []Option {
	return []Option{
		WithStrict(a.Strict),
		WithSkippedTargets(a.Skip),
		WithParallelism(a.Parallelism),
	}
}

func newFlagSet(a *Args) *pflag.FlagSet {
	fs := pflag.NewFlagSet("build", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringSlice("skip", nil, "skip the named targets; --skip= skips every target that is not invoked")
	fs.BoolVar(&a.Strict, "strict", false, "fail unless the dependencies fix a single execution order")
	fs.BoolVar(&a.Plan, "plan", false, "print the resolved plan as YAML instead of running it")
	fs.IntVarP(&a.Parallelism, "parallelism", "p", 1, "number of targets to run at once, 0 for no limit")
	fs.CountVarP(&a.Verbosity, "verbose", "v", "increase log verbosity")
	fs.BoolVarP(&a.Help, "help", "h", false, "list the available targets")

	return fs
}

// ParseArgs parses a command line without the program name. Positional
// arguments are target names.
func ParseArgs(args []string) (*Args, error) {
	a := &Args{}
	fs := newFlagSet(a)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.Changed("skip") {
		skip, err := fs.GetStringSlice("skip")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		a.Skip = make([]string, 0, len(skip))
		for _, s := range skip {
			if s != "" {
				a.Skip = append(a.Skip, s)
			}
		}
	}

	a.Targets = fs.Args()
	if a.Targets == nil {
		a.Targets = []string{}
	}

	return a, nil
}

// Usage describes the flags understood by ParseArgs.
func Usage() string {
	return newFlagSet(&Args{}).FlagUsages()
}
