package kdef

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Catalog is the declared set of targets, in declaration order.
type Catalog struct {
	targets []*TargetDefinition
	byName  map[string]*TargetDefinition
}

// NewCatalog wraps already constructed definitions. Use Validate before
// handing the catalog to a resolver, or construct it through Builder.
func NewCatalog(targets ...*TargetDefinition) *Catalog {
	c := &Catalog{
		targets: targets,
		byName:  make(map[string]*TargetDefinition, len(targets)),
	}
	for _, t := range targets {
		key := foldName(t.Name)
		if _, exists := c.byName[key]; !exists {
			c.byName[key] = t
		}
	}
	return c
}

// Targets returns the definitions in declaration order.
func (c *Catalog) Targets() []*TargetDefinition {
	out := make([]*TargetDefinition, len(c.targets))
	copy(out, c.targets)
	return out
}

// Len returns the number of targets.
func (c *Catalog) Len() int {
	return len(c.targets)
}

// Lookup finds a target by case-insensitive name.
func (c *Catalog) Lookup(name string) (*TargetDefinition, bool) {
	t, ok := c.byName[foldName(name)]
	return t, ok
}

// Defaults returns every target marked as default.
func (c *Catalog) Defaults() []*TargetDefinition {
	var out []*TargetDefinition
	for _, t := range c.targets {
		if t.IsDefault {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether the definition itself (not just its name) belongs
// to the catalog.
func (c *Catalog) Contains(t *TargetDefinition) bool {
	if t == nil {
		return false
	}
	found, ok := c.byName[foldName(t.Name)]
	return ok && found == t
}

// ResetSkip clears the Skip flag of every target.
func (c *Catalog) ResetSkip() {
	for _, t := range c.targets {
		t.Skip = false
	}
}

// Validate checks names and dependency references. Every problem found is
// returned, combined into one error.
func (c *Catalog) Validate() error {
	var err error

	seen := make(map[string]bool, len(c.targets))
	for _, t := range c.targets {
		if strings.TrimSpace(t.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("%w: target name cannot be empty", ErrInvalidName))
			continue
		}
		if t.HasName(DefaultTarget) {
			err = multierr.Append(err, fmt.Errorf("%w: the name '%s' cannot be used as target name", ErrReservedName, DefaultTarget))
		}

		key := foldName(t.Name)
		if seen[key] {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrDuplicateTarget, t.Name))
		}
		seen[key] = true
	}

	for _, t := range c.targets {
		for i, dep := range t.Dependencies {
			if dep == nil {
				err = multierr.Append(err, fmt.Errorf("%w: %s has nil dependency at position %d", ErrUnknownDependency, t.Name, i))
				continue
			}
			if !c.Contains(dep) {
				err = multierr.Append(err, fmt.Errorf("%w: %s depends on %q which is not part of the catalog", ErrUnknownDependency, t.Name, dep.Name))
			}
		}
	}

	return err
}

func foldName(name string) string {
	return strings.ToLower(name)
}
