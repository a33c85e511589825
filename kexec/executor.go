package kexec

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/birdayz/ktarget/kdef"
)

// Status is the outcome of a single target.
type Status int

const (
	StatusNotRun Status = iota
	StatusSucceeded
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotRun:
		return "NotRun"
	case StatusSucceeded:
		return "Succeeded"
	case StatusSkipped:
		return "Skipped"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// TargetReport describes what happened to one target.
type TargetReport struct {
	Name     string
	Status   Status
	Duration time.Duration
	Err      error
}

// Report lists target outcomes in the order the targets were given.
type Report struct {
	Targets []TargetReport
}

// Status returns the outcome of the named target.
func (r *Report) Status(name string) (Status, bool) {
	for _, t := range r.Targets {
		if t.Name == name {
			return t.Status, true
		}
	}
	return StatusNotRun, false
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogr sets the logger. Actions find it in their context through
// logr.FromContextOrDiscard.
var WithLogr = func(log logr.Logger) Option {
	return func(e *Executor) {
		e.log = log
	}
}

// WithParallelism limits how many targets run at once. Values below 1 mean
// no limit.
var WithParallelism = func(n int) Option {
	return func(e *Executor) {
		e.parallelism = n
	}
}

// Executor runs targets after their dependencies.
type Executor struct {
	log         logr.Logger
	parallelism int
}

// NewExecutor creates an Executor running one target at a time unless
// configured otherwise.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		log:         logr.Discard(),
		parallelism: 1,
	}

	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithName("exec")

	return e
}

// Run executes the targets. Every dependency that is part of targets must
// come before its dependent. The returned error combines the failures of all
// failed targets.
func (e *Executor) Run(ctx context.Context, targets []*kdef.TargetDefinition) (*Report, error) {
	deps, err := dependencyIndices(targets)
	if err != nil {
		return nil, err
	}

	reports := make([]TargetReport, len(targets))
	done := make([]chan struct{}, len(targets))
	for i := range done {
		done[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	if e.parallelism > 0 {
		g.SetLimit(e.parallelism)
	}

	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			defer close(done[i])

			reports[i] = e.runTarget(gctx, t, deps[i], reports, done)
			if reports[i].Status == StatusFailed {
				return reports[i].Err
			}
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	for _, r := range reports {
		if r.Status == StatusFailed {
			errs = multierr.Append(errs, r.Err)
		}
	}
	if errs == nil && ctx.Err() != nil {
		errs = ctx.Err()
	}

	return &Report{Targets: reports}, errs
}

// runTarget waits for the dependencies and runs the actions. It is called on
// its own goroutine; reports[d] may be read only after done[d] is closed.
func (e *Executor) runTarget(ctx context.Context, t *kdef.TargetDefinition, deps []int, reports []TargetReport, done []chan struct{}) TargetReport {
	rep := TargetReport{Name: t.Name, Status: StatusNotRun}
	log := e.log.WithValues("target", t.Name)

	for _, d := range deps {
		select {
		case <-done[d]:
		case <-ctx.Done():
			return rep
		}
		if s := reports[d].Status; s == StatusFailed || s == StatusNotRun {
			log.V(1).Info("Not running target, dependency did not complete", "dependency", reports[d].Name)
			return rep
		}
	}
	if ctx.Err() != nil {
		return rep
	}

	if t.Skip {
		log.Info("Skipping target")
		rep.Status = StatusSkipped
		return rep
	}
	if !t.ConditionsMet() {
		log.Info("Skipping target, condition not met")
		rep.Status = StatusSkipped
		return rep
	}

	log.Info("Executing target")
	actx := logr.NewContext(ctx, log)
	start := time.Now()

	rep.Status = StatusSucceeded
	for _, action := range t.Actions {
		if err := action(actx); err != nil {
			rep.Status = StatusFailed
			rep.Err = fmt.Errorf("%w: %s: %w", ErrTargetFailed, t.Name, err)
			break
		}
	}
	rep.Duration = time.Since(start)

	if rep.Status == StatusFailed {
		log.Error(rep.Err, "Target failed", "duration", rep.Duration)
	} else {
		log.Info("Target succeeded", "duration", rep.Duration)
	}
	return rep
}

// dependencyIndices resolves, per target, the positions of its dependencies
// within targets. Dependencies outside the list are ignored.
func dependencyIndices(targets []*kdef.TargetDefinition) ([][]int, error) {
	index := make(map[*kdef.TargetDefinition]int, len(targets))
	for i, t := range targets {
		index[t] = i
	}

	deps := make([][]int, len(targets))
	for i, t := range targets {
		for _, dep := range t.Dependencies {
			j, ok := index[dep]
			if !ok {
				continue
			}
			if j >= i {
				return nil, fmt.Errorf("%w: %s runs before its dependency %s", ErrInvalidOrder, t.Name, dep.Name)
			}
			deps[i] = append(deps[i], j)
		}
	}
	return deps, nil
}

// Sentinel errors for common failure cases.
var (
	ErrTargetFailed = errors.New("target failed")
	ErrInvalidOrder = errors.New("targets are not in dependency order")
)
