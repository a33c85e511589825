package kdef

import (
	"errors"
)

// Builder declares the targets of a catalog.
//
// IMPORTANT: Builder is NOT safe for concurrent use.
type Builder struct {
	targets []*TargetBuilder
}

// NewBuilder creates a new catalog builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Target declares a new target. Declaration order is significant: it breaks
// ties when ordering independent targets.
func (b *Builder) Target(name string) *TargetBuilder {
	tb := &TargetBuilder{def: &TargetDefinition{Name: name}}
	b.targets = append(b.targets, tb)
	return tb
}

// Build validates and returns the catalog.
func (b *Builder) Build() (*Catalog, error) {
	defs := make([]*TargetDefinition, 0, len(b.targets))
	for _, tb := range b.targets {
		defs = append(defs, tb.def)
	}

	c := NewCatalog(defs...)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// TargetBuilder is the fluent declaration API of a single target.
type TargetBuilder struct {
	def *TargetDefinition
}

// Description sets the text shown in the target listing.
func (tb *TargetBuilder) Description(text string) *TargetBuilder {
	tb.def.Description = text
	return tb
}

// DependsOn appends dependencies. The targets must belong to the same builder.
func (tb *TargetBuilder) DependsOn(targets ...*TargetBuilder) *TargetBuilder {
	for _, t := range targets {
		tb.def.Dependencies = append(tb.def.Dependencies, t.def)
	}
	return tb
}

// OnlyWhen appends run conditions.
func (tb *TargetBuilder) OnlyWhen(conditions ...Condition) *TargetBuilder {
	tb.def.Conditions = append(tb.def.Conditions, conditions...)
	return tb
}

// WhenSkipped sets what happens to the dependencies when a condition fails.
func (tb *TargetBuilder) WhenSkipped(behavior DependencySkipBehavior) *TargetBuilder {
	tb.def.DependencyBehavior = behavior
	return tb
}

// Default marks the target as the one run when no target is named.
func (tb *TargetBuilder) Default() *TargetBuilder {
	tb.def.IsDefault = true
	return tb
}

// Executes appends actions.
func (tb *TargetBuilder) Executes(actions ...Action) *TargetBuilder {
	tb.def.Actions = append(tb.def.Actions, actions...)
	return tb
}

// Definition returns the underlying definition.
func (tb *TargetBuilder) Definition() *TargetDefinition {
	return tb.def
}

// Sentinel errors for common failure cases.
var (
	ErrInvalidName       = errors.New("invalid target name")
	ErrReservedName      = errors.New("reserved target name")
	ErrDuplicateTarget   = errors.New("duplicate target")
	ErrUnknownDependency = errors.New("unknown dependency")
)
