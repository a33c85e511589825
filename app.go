package ktarget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/birdayz/ktarget/kdef"
	"github.com/birdayz/ktarget/kexec"
	"github.com/birdayz/ktarget/khelp"
	"github.com/birdayz/ktarget/kresolve"
)

// ErrNilCatalog is returned when an App is created without a catalog.
var ErrNilCatalog = errors.New("ktarget: catalog is required")

// App plans and runs the targets of a catalog.
type App struct {
	catalog *kdef.Catalog

	log         logr.Logger
	strict      bool
	skipped     []string
	parallelism int
	out         io.Writer
}

// New creates an App. The catalog is validated up front.
func New(c *kdef.Catalog, opts ...Option) (*App, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}

	a := &App{
		catalog:     c,
		log:         logr.Discard(),
		parallelism: 1,
		out:         os.Stdout,
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return a, nil
}

// MustNew is like New but panics on error.
func MustNew(c *kdef.Catalog, opts ...Option) *App {
	a, err := New(c, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Plan resolves the invoked targets without running anything. An empty
// invocation selects the default target.
func (a *App) Plan(invoked []string) (*kresolve.Result, error) {
	r := kresolve.New(
		kresolve.WithLogr(a.log),
		kresolve.WithStrict(a.strict),
		kresolve.WithSkippedTargets(a.skipped),
	)
	return r.Resolve(a.catalog, invoked)
}

// Run plans the invoked targets and executes the plan. The report is nil
// only if planning failed.
func (a *App) Run(ctx context.Context, invoked []string) (*kexec.Report, error) {
	res, err := a.Plan(invoked)
	if err != nil {
		return nil, err
	}

	e := kexec.NewExecutor(
		kexec.WithLogr(a.log),
		kexec.WithParallelism(a.parallelism),
	)
	return e.Run(ctx, res.Targets)
}

// WritePlan resolves the invoked targets and writes the plan as YAML.
func (a *App) WritePlan(invoked []string) error {
	res, err := a.Plan(invoked)
	if err != nil {
		return err
	}
	return res.WriteYAML(a.out)
}

// WriteHelp writes the list of available targets.
func (a *App) WriteHelp() error {
	_, err := io.WriteString(a.out, khelp.TargetsText(a.catalog))
	return err
}
