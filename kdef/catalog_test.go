package kdef

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCatalogLookup(t *testing.T) {
	b := NewBuilder()
	compile := b.Target("Compile").Default()
	b.Target("Test").DependsOn(compile)
	c := b.MustBuild()

	got, ok := c.Lookup("compile")
	assert.True(t, ok)
	assert.Equal(t, compile.Definition(), got)

	_, ok = c.Lookup("Pack")
	assert.False(t, ok)

	assert.Equal(t, []string{"Compile"}, Names(c.Defaults()))
	assert.True(t, c.Contains(compile.Definition()))
	assert.False(t, c.Contains(&TargetDefinition{Name: "Compile"}))
	assert.False(t, c.Contains(nil))
}

func TestCatalogTargetsIsACopy(t *testing.T) {
	c := NewCatalog(&TargetDefinition{Name: "A"}, &TargetDefinition{Name: "B"})

	targets := c.Targets()
	targets[0] = nil

	assert.Equal(t, []string{"A", "B"}, Names(c.Targets()))
}

func TestCatalogResetSkip(t *testing.T) {
	a := &TargetDefinition{Name: "A", Skip: true}
	b := &TargetDefinition{Name: "B"}
	c := NewCatalog(a, b)

	c.ResetSkip()

	assert.False(t, a.Skip)
	assert.False(t, b.Skip)
}

func TestConditionsMet(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		assert.True(t, (&TargetDefinition{Name: "A"}).ConditionsMet())
	})

	t.Run("stops at first failing condition", func(t *testing.T) {
		calls := 0
		def := &TargetDefinition{
			Name: "A",
			Conditions: []Condition{
				func() bool { calls++; return false },
				func() bool { calls++; return true },
			},
		}
		assert.False(t, def.ConditionsMet())
		assert.Equal(t, 1, calls)
	})

	t.Run("re-evaluated on every call", func(t *testing.T) {
		enabled := false
		def := &TargetDefinition{
			Name:       "A",
			Conditions: []Condition{func() bool { return enabled }},
		}
		assert.False(t, def.ConditionsMet())
		enabled = true
		assert.True(t, def.ConditionsMet())
	})
}

func TestDependsOn(t *testing.T) {
	dep := &TargetDefinition{Name: "Dep"}
	other := &TargetDefinition{Name: "Other"}
	def := &TargetDefinition{Name: "A", Dependencies: []*TargetDefinition{dep}}

	assert.True(t, def.DependsOn(dep))
	assert.False(t, def.DependsOn(other))
	assert.True(t, def.HasName("a"))
}

func TestDependencySkipBehaviorString(t *testing.T) {
	assert.Equal(t, "SkipDependencies", SkipDependencies.String())
	assert.Equal(t, "ExecuteDependencies", ExecuteDependencies.String())
	assert.Equal(t, "Unknown", DependencySkipBehavior(7).String())
}
