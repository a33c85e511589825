package kdag

import (
	"errors"
	"fmt"

	"github.com/birdayz/ktarget/kdef"
)

// Vertex pairs a target definition with its resolved dependencies.
type Vertex struct {
	Index  int
	Target *kdef.TargetDefinition

	// Dependencies are vertex indices, in declaration order.
	Dependencies []int
}

// Graph is the dependency graph of a catalog. Vertex i is the i-th target in
// declaration order.
type Graph struct {
	Vertices []Vertex
}

// Build creates one vertex per target and resolves dependency edges.
func Build(c *kdef.Catalog) (*Graph, error) {
	targets := c.Targets()

	index := make(map[*kdef.TargetDefinition]int, len(targets))
	for i, t := range targets {
		index[t] = i
	}

	g := &Graph{Vertices: make([]Vertex, len(targets))}
	for i, t := range targets {
		deps := make([]int, 0, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDependencyNotFound, t.Name, dep)
			}
			deps = append(deps, j)
		}
		g.Vertices[i] = Vertex{Index: i, Target: t, Dependencies: deps}
	}

	return g, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.Vertices)
}

// Targets maps vertex indices back to their definitions.
func (g *Graph) Targets(indices []int) []*kdef.TargetDefinition {
	out := make([]*kdef.TargetDefinition, 0, len(indices))
	for _, i := range indices {
		out = append(out, g.Vertices[i].Target)
	}
	return out
}

// Clone returns a deep copy of the graph structure. Target definitions are shared.
func (g *Graph) Clone() *Graph {
	out := &Graph{Vertices: make([]Vertex, len(g.Vertices))}
	for i, v := range g.Vertices {
		deps := make([]int, len(v.Dependencies))
		copy(deps, v.Dependencies)
		out.Vertices[i] = Vertex{Index: v.Index, Target: v.Target, Dependencies: deps}
	}
	return out
}

func (g *Graph) names(indices []int) []string {
	return kdef.Names(g.Targets(indices))
}

// Sentinel errors for common failure cases.
var (
	ErrDependencyNotFound = errors.New("dependency not found in catalog")
	ErrIncompleteOrder    = errors.New("incomplete target definition order")
	ErrCycleDetected      = errors.New("circular dependencies between target definitions")
)
