package ktarget

import (
	"io"

	"github.com/go-logr/logr"
)

// Option is a function that configures an App
type Option func(*App)

// WithLogr sets the logger for the application
var WithLogr = func(log logr.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithStrict makes planning fail unless the catalog fixes a single order
var WithStrict = func(strict bool) Option {
	return func(a *App) {
		a.strict = strict
	}
}

// WithSkippedTargets sets the targets to skip. A nil slice skips nothing, an
// empty one skips everything that is not invoked.
var WithSkippedTargets = func(names []string) Option {
	return func(a *App) {
		a.skipped = names
	}
}

// WithParallelism sets how many targets may run at once. Values below 1 mean
// no limit.
var WithParallelism = func(n int) Option {
	return func(a *App) {
		a.parallelism = n
	}
}

// WithOutput sets where help text and plans are written
var WithOutput = func(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}
