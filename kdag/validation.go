package kdag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"
	"golang.org/x/exp/slices"
)

// Cycles finds every cycle among the given vertices, ignoring edges that
// leave the subset. A cycle is a strongly connected component with more than
// one vertex, or a single vertex depending on itself.
//
// Each cycle lists its members by walking dependency edges from the member
// declared first. Cycles are ordered by that first member.
func (g *Graph) Cycles(subset []int) ([][]int, error) {
	in := make(map[int]bool, len(subset))
	for _, i := range subset {
		in[i] = true
	}

	// Keys are shifted by one: the SCC search treats the zero key as unset.
	dg := graph.New(graph.IntHash, graph.Directed())
	for _, i := range subset {
		if err := dg.AddVertex(vertexKey(i)); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", g.Vertices[i].Target, err)
		}
	}
	for _, i := range subset {
		for _, d := range g.Vertices[i].Dependencies {
			if !in[d] {
				continue
			}
			// Declaring the same dependency twice yields a duplicate edge.
			if err := dg.AddEdge(vertexKey(i), vertexKey(d)); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add edge %s -> %s: %w", g.Vertices[i].Target, g.Vertices[d].Target, err)
			}
		}
	}

	components, err := graph.StronglyConnectedComponents(dg)
	if err != nil {
		return nil, fmt.Errorf("strongly connected components: %w", err)
	}

	var cycles [][]int
	for _, keys := range components {
		if len(keys) == 0 {
			continue
		}
		component := make([]int, 0, len(keys))
		for _, k := range keys {
			component = append(component, k-1)
		}
		if len(component) == 1 && !slices.Contains(g.Vertices[component[0]].Dependencies, component[0]) {
			continue
		}
		cycles = append(cycles, g.walk(component))
	}

	slices.SortFunc(cycles, func(a, b []int) int { return a[0] - b[0] })
	return cycles, nil
}

func vertexKey(i int) int { return i + 1 }

// walk lists the members of a component in dependency order, depth first,
// starting at the member declared first.
func (g *Graph) walk(component []int) []int {
	members := make(map[int]bool, len(component))
	start := component[0]
	for _, i := range component {
		members[i] = true
		if i < start {
			start = i
		}
	}

	visited := make(map[int]bool, len(component))
	out := make([]int, 0, len(component))

	var visit func(int)
	visit = func(i int) {
		visited[i] = true
		out = append(out, i)
		for _, d := range g.Vertices[i].Dependencies {
			if members[d] && !visited[d] {
				visit(d)
			}
		}
	}
	visit(start)

	return out
}

func (g *Graph) cycleError(remaining []int) error {
	cycles, err := g.Cycles(remaining)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCycleDetected, err)
	}

	cerr := &CycleError{Cycles: make([][]string, 0, len(cycles))}
	for _, c := range cycles {
		names := g.names(c)
		if len(names) == 1 {
			names = append(names, names[0])
		}
		cerr.Cycles = append(cerr.Cycles, names)
	}
	return cerr
}

// CycleError reports the cycles that prevented ordering. Each cycle is a
// list of target names; a self-dependency is listed as "A -> A".
type CycleError struct {
	Cycles [][]string
}

func (e *CycleError) Error() string {
	var sb strings.Builder
	sb.WriteString("Circular dependencies between target definitions.")
	for _, c := range e.Cycles {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.Join(c, " -> "))
	}
	return sb.String()
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }
