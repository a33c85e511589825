// Package kdag orders the targets of a catalog.
//
// # Overview
//
// Build wraps every target definition of a kdef.Catalog in a Vertex and
// resolves its declared dependencies to vertex indices. The graph is a dense
// slice; edges are indices into it, so it can be copied and inspected
// without chasing pointers.
//
// Sequence produces a total order by repeatedly removing a sink, i.e. a
// vertex that no remaining vertex depends on. Removed vertices are collected
// dependents-first; the result is reversed so that every target appears
// after all of its dependencies.
//
// # Determinism
//
// When several sinks are available the first one in declaration order is
// taken, so the order is a function of the catalog alone. In strict mode
// more than one simultaneous sink is an error instead (*AmbiguousOrderError):
// the catalog has to spell out the order itself.
//
// # Cycles
//
// If vertices remain but none of them is a sink, the remaining graph has a
// cycle. Sequence then runs a strongly connected component analysis over
// the remaining vertices and fails with a *CycleError listing every
// component that forms a cycle.
//
// All errors wrap the sentinel errors of this package and can be checked
// with errors.Is().
package kdag
