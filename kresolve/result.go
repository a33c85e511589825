package kresolve

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/birdayz/ktarget/kdef"
)

// Result is the outcome of a resolution pass.
type Result struct {
	// Targets holds every included target in dependency-first order,
	// skipped ones too.
	Targets []*kdef.TargetDefinition

	// Invoked, Skipped and Executing are target names. Executing is
	// Targets minus Skipped.
	//
	// Skipped lists every included target that will not run: the ones named
	// in the skip list and the ones skipped by a failing condition, including
	// dependencies skipped along with them. It is not limited to the
	// requested skip list.
	Invoked   []string
	Skipped   []string
	Executing []string
}

func newResult(included, invoked []*kdef.TargetDefinition) *Result {
	res := &Result{
		Targets:   included,
		Invoked:   kdef.Names(invoked),
		Skipped:   make([]string, 0),
		Executing: make([]string, 0, len(included)),
	}
	for _, t := range included {
		if t.Skip {
			res.Skipped = append(res.Skipped, t.Name)
		} else {
			res.Executing = append(res.Executing, t.Name)
		}
	}
	return res
}

// Order returns the names of all included targets in execution order.
func (r *Result) Order() []string {
	return kdef.Names(r.Targets)
}

// Runnable returns the targets that are not skipped and whose conditions
// currently hold. Conditions are evaluated on every call.
func (r *Result) Runnable() []*kdef.TargetDefinition {
	out := make([]*kdef.TargetDefinition, 0, len(r.Targets))
	for _, t := range r.Targets {
		if !t.Skip && t.ConditionsMet() {
			out = append(out, t)
		}
	}
	return out
}

// IsExecuting reports whether the named target is part of the plan and not skipped.
func (r *Result) IsExecuting(name string) bool {
	return slices.ContainsFunc(r.Targets, func(t *kdef.TargetDefinition) bool {
		return !t.Skip && t.HasName(name)
	})
}

type plan struct {
	Order     []string `yaml:"order"`
	Invoked   []string `yaml:"invoked"`
	Skipped   []string `yaml:"skipped"`
	Executing []string `yaml:"executing"`
}

// WriteYAML publishes the result as a YAML document.
func (r *Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	p := plan{
		Order:     r.Order(),
		Invoked:   r.Invoked,
		Skipped:   r.Skipped,
		Executing: r.Executing,
	}
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}
