package kdag

import (
	"testing"

	"github.com/birdayz/ktarget/kdef"
)

// newTestCatalog declares targets in the given order. deps maps a target name
// to the names of its dependencies, in declaration order.
func newTestCatalog(tb testing.TB, names []string, deps map[string][]string) *kdef.Catalog {
	tb.Helper()

	defs := make(map[string]*kdef.TargetDefinition, len(names))
	ordered := make([]*kdef.TargetDefinition, 0, len(names))
	for _, n := range names {
		d := &kdef.TargetDefinition{Name: n}
		defs[n] = d
		ordered = append(ordered, d)
	}
	for name, ds := range deps {
		for _, dep := range ds {
			target, ok := defs[dep]
			if !ok {
				tb.Fatalf("test catalog: %s depends on undeclared %s", name, dep)
			}
			defs[name].Dependencies = append(defs[name].Dependencies, target)
		}
	}
	return kdef.NewCatalog(ordered...)
}

func buildTestGraph(tb testing.TB, names []string, deps map[string][]string) *Graph {
	tb.Helper()

	g, err := Build(newTestCatalog(tb, names, deps))
	if err != nil {
		tb.Fatalf("build test graph: %v", err)
	}
	return g
}

// assertDependenciesFirst fails if any vertex appears before one of its dependencies.
func assertDependenciesFirst(tb testing.TB, g *Graph, order []int) {
	tb.Helper()

	pos := make(map[int]int, len(order))
	for p, i := range order {
		pos[i] = p
	}
	for _, v := range g.Vertices {
		for _, d := range v.Dependencies {
			if pos[d] >= pos[v.Index] {
				tb.Fatalf("%s is ordered before its dependency %s", v.Target, g.Vertices[d].Target)
			}
		}
	}
}
