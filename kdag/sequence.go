package kdag

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Sequence returns every vertex index ordered so that each vertex comes after
// all of its dependencies.
//
// Sinks are removed one at a time. Without strict, the first sink in
// declaration order wins. With strict, more than one sink at any step fails
// with *AmbiguousOrderError. If no sink is left, Sequence fails with
// *CycleError.
func (g *Graph) Sequence(strict bool) ([]int, error) {
	remaining := make([]int, len(g.Vertices))
	for i := range remaining {
		remaining[i] = i
	}

	// dependents[i] counts the edges from remaining vertices to i.
	dependents := make([]int, len(g.Vertices))
	for _, v := range g.Vertices {
		for _, d := range v.Dependencies {
			dependents[d]++
		}
	}

	order := make([]int, 0, len(g.Vertices))
	for len(remaining) > 0 {
		sinks := sinksOf(remaining, dependents)
		if strict && len(sinks) > 1 {
			return nil, &AmbiguousOrderError{Candidates: g.names(sinks)}
		}
		if len(sinks) == 0 {
			return nil, g.cycleError(remaining)
		}

		next := sinks[0]
		pos := slices.Index(remaining, next)
		remaining = slices.Delete(remaining, pos, pos+1)
		for _, d := range g.Vertices[next].Dependencies {
			dependents[d]--
		}
		order = append(order, next)
	}

	slices.Reverse(order)
	return order, nil
}

func sinksOf(remaining []int, dependents []int) []int {
	var sinks []int
	for _, i := range remaining {
		if dependents[i] == 0 {
			sinks = append(sinks, i)
		}
	}
	return sinks
}

// AmbiguousOrderError is returned in strict mode when the catalog does not
// determine a single order. Candidates are the targets that could have been
// picked at the failing step.
type AmbiguousOrderError struct {
	Candidates []string
}

func (e *AmbiguousOrderError) Error() string {
	var sb strings.Builder
	sb.WriteString("Incomplete target definition order.")
	for _, c := range e.Candidates {
		sb.WriteString("\n  - ")
		sb.WriteString(c)
	}
	return sb.String()
}

func (e *AmbiguousOrderError) Unwrap() error { return ErrIncompleteOrder }
