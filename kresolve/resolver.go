package kresolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/exp/slices"

	"github.com/birdayz/ktarget/kdag"
	"github.com/birdayz/ktarget/kdef"
	"github.com/birdayz/ktarget/khelp"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogr sets the logger.
var WithLogr = func(log logr.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithStrict makes ordering fail when the catalog allows more than one order.
var WithStrict = func(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithSkippedTargets sets the targets to skip unless they are invoked.
// A nil slice skips nothing. An empty, non-nil slice skips every target that
// is not invoked. Otherwise only the named targets are skipped.
var WithSkippedTargets = func(names []string) Option {
	return func(r *Resolver) {
		r.skipped = names
	}
}

// WithHelpText replaces the target listing attached to unknown target errors.
var WithHelpText = func(render func(*kdef.Catalog) string) Option {
	return func(r *Resolver) {
		r.helpText = render
	}
}

// Resolver computes the targets to execute for an invocation.
type Resolver struct {
	log      logr.Logger
	strict   bool
	skipped  []string
	helpText func(*kdef.Catalog) string
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		log:      logr.Discard(),
		helpText: khelp.TargetsText,
	}

	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithName("resolve")

	return r
}

// Resolve runs one resolution pass over the catalog. Every error is fatal for
// the invocation: no target may run if Resolve fails.
func (r *Resolver) Resolve(c *kdef.Catalog, invokedNames []string) (*Result, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	c.ResetSkip()

	invoked, err := r.invokedTargets(c, invokedNames)
	if err != nil {
		return nil, err
	}

	g, err := kdag.Build(c)
	if err != nil {
		return nil, err
	}

	order, err := g.Sequence(r.strict)
	if err != nil {
		return nil, err
	}

	included := include(g, order, invoked)
	r.log.V(1).Info("Included targets", "targets", kdef.Names(included))

	r.skipRequested(included, invoked)
	r.skipConditional(included, invoked)

	res := newResult(included, invoked)
	r.log.Info("Resolved targets", "invoked", res.Invoked, "skipped", res.Skipped, "executing", res.Executing)

	return res, nil
}

// invokedTargets maps names to definitions. Duplicates collapse onto their
// first occurrence.
func (r *Resolver) invokedTargets(c *kdef.Catalog, names []string) ([]*kdef.TargetDefinition, error) {
	if len(names) == 0 {
		names = []string{kdef.DefaultTarget}
	}

	invoked := make([]*kdef.TargetDefinition, 0, len(names))
	for _, name := range names {
		t, err := r.lookup(c, name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(invoked, t) {
			invoked = append(invoked, t)
		}
	}
	return invoked, nil
}

func (r *Resolver) lookup(c *kdef.Catalog, name string) (*kdef.TargetDefinition, error) {
	if strings.EqualFold(name, kdef.DefaultTarget) {
		defaults := c.Defaults()
		switch len(defaults) {
		case 1:
			return defaults[0], nil
		case 0:
			return nil, ErrNoDefaultTarget
		default:
			return nil, fmt.Errorf("%w: %s", ErrMultipleDefaults, strings.Join(kdef.Names(defaults), ", "))
		}
	}

	t, ok := c.Lookup(name)
	if !ok {
		return nil, &UnknownTargetError{Name: name, Help: r.helpText(c)}
	}
	return t, nil
}

// include walks the order dependents-first and keeps a target if it is
// invoked or a kept target depends on it. The result is dependency-first.
func include(g *kdag.Graph, order []int, invoked []*kdef.TargetDefinition) []*kdef.TargetDefinition {
	needed := make([]bool, g.Len())
	kept := make([]*kdef.TargetDefinition, 0, len(order))

	for i := len(order) - 1; i >= 0; i-- {
		v := g.Vertices[order[i]]
		if !needed[v.Index] && !slices.Contains(invoked, v.Target) {
			continue
		}
		kept = append(kept, v.Target)
		for _, d := range v.Dependencies {
			needed[d] = true
		}
	}

	slices.Reverse(kept)
	return kept
}

// skipRequested marks the targets of the skip list. Invoked targets are never
// skipped this way.
func (r *Resolver) skipRequested(included, invoked []*kdef.TargetDefinition) {
	if r.skipped == nil {
		return
	}

	for _, t := range included {
		if slices.Contains(invoked, t) {
			continue
		}
		if len(r.skipped) == 0 || slices.ContainsFunc(r.skipped, t.HasName) {
			t.Skip = true
			r.log.V(1).Info("Skipping requested target", "target", t.Name)
		}
	}
}

// UnknownTargetError is returned when an invoked name matches no target.
// Help lists the available targets.
type UnknownTargetError struct {
	Name string
	Help string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("Target with name '%s' is not available.\n\n%s", e.Name, e.Help)
}

func (e *UnknownTargetError) Unwrap() error { return ErrUnknownTarget }

// Sentinel errors for common failure cases.
var (
	ErrNilCatalog       = errors.New("catalog is required")
	ErrUnknownTarget    = errors.New("unknown target")
	ErrNoDefaultTarget  = errors.New("no default target declared")
	ErrMultipleDefaults = errors.New("more than one default target declared")
)
