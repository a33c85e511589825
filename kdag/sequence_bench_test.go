package kdag

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// chainCatalog declares n targets where target i depends on target i-1.
func chainCatalog(n int) ([]string, map[string][]string) {
	names := make([]string, 0, n)
	deps := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("target-%d", i)
		names = append(names, name)
		if i > 0 {
			deps[name] = []string{fmt.Sprintf("target-%d", i-1)}
		}
	}
	return names, deps
}

// BenchmarkBuildSmallGraph benchmarks building a small graph (10 targets)
func BenchmarkBuildSmallGraph(b *testing.B) {
	names, deps := chainCatalog(10)
	c := newTestCatalog(b, names, deps)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Build(c)
		assert.NoError(b, err)
	}
}

// BenchmarkSequenceSmallChain benchmarks ordering a 10 target chain
func BenchmarkSequenceSmallChain(b *testing.B) {
	names, deps := chainCatalog(10)
	g := buildTestGraph(b, names, deps)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.Sequence(true)
		assert.NoError(b, err)
	}
}

// BenchmarkSequenceLargeChain benchmarks ordering a 500 target chain
func BenchmarkSequenceLargeChain(b *testing.B) {
	names, deps := chainCatalog(500)
	g := buildTestGraph(b, names, deps)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.Sequence(true)
		assert.NoError(b, err)
	}
}

// BenchmarkSequenceBranching benchmarks ordering 10 branches of 10 targets
// sharing one root
func BenchmarkSequenceBranching(b *testing.B) {
	names := []string{"root"}
	deps := make(map[string][]string)
	for j := 0; j < 10; j++ {
		parent := "root"
		for k := 0; k < 10; k++ {
			name := fmt.Sprintf("target-%d-%d", j, k)
			names = append(names, name)
			deps[name] = []string{parent}
			parent = name
		}
	}
	g := buildTestGraph(b, names, deps)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.Sequence(false)
		assert.NoError(b, err)
	}
}

// BenchmarkCycles benchmarks cycle analysis of a 100 target ring
func BenchmarkCycles(b *testing.B) {
	names, deps := chainCatalog(100)
	deps[names[0]] = []string{names[len(names)-1]}
	g := buildTestGraph(b, names, deps)

	all := make([]int, g.Len())
	for i := range all {
		all[i] = i
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cycles, err := g.Cycles(all)
		assert.NoError(b, err)
		assert.Equal(b, 1, len(cycles))
	}
}
