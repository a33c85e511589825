package kdef

import (
	"context"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultTarget is the reserved name that selects the catalog's default target.
const DefaultTarget = "default"

// DependencySkipBehavior controls what happens to a target's dependencies when
// the target itself is skipped because one of its conditions is false.
type DependencySkipBehavior int

const (
	// SkipDependencies also skips dependencies that nothing else still needs.
	SkipDependencies DependencySkipBehavior = iota
	// ExecuteDependencies keeps running the dependencies.
	ExecuteDependencies
)

func (b DependencySkipBehavior) String() string {
	switch b {
	case SkipDependencies:
		return "SkipDependencies"
	case ExecuteDependencies:
		return "ExecuteDependencies"
	default:
		return "Unknown"
	}
}

// Condition decides whether a target runs. It is evaluated every time it is
// needed and its result is never cached.
type Condition func() bool

// Action is a unit of work executed when a target runs.
type Action func(ctx context.Context) error

// TargetDefinition is one declared build step.
type TargetDefinition struct {
	Name        string
	Description string

	// Dependencies in declaration order.
	Dependencies []*TargetDefinition

	// Conditions must all hold for the target to run.
	Conditions []Condition

	DependencyBehavior DependencySkipBehavior

	// IsDefault marks the target selected by DefaultTarget.
	IsDefault bool

	Actions []Action

	// Skip is set by resolution. It is the only field that changes after
	// the catalog is built.
	Skip bool
}

// ConditionsMet evaluates the conditions in order and stops at the first one
// that fails.
func (t *TargetDefinition) ConditionsMet() bool {
	for _, c := range t.Conditions {
		if !c() {
			return false
		}
	}
	return true
}

// DependsOn reports whether dep is a direct dependency of t.
func (t *TargetDefinition) DependsOn(dep *TargetDefinition) bool {
	return slices.Contains(t.Dependencies, dep)
}

// HasName compares the target name case-insensitively.
func (t *TargetDefinition) HasName(name string) bool {
	return strings.EqualFold(t.Name, name)
}

func (t *TargetDefinition) String() string {
	return t.Name
}

// Names returns the names of the given targets, in order. The result is never nil.
func Names(targets []*TargetDefinition) []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name)
	}
	return names
}
