package kdag

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/birdayz/ktarget/kdef"
)

func TestBuild(t *testing.T) {
	t.Run("vertices follow declaration order", func(t *testing.T) {
		g := buildTestGraph(t,
			[]string{"Restore", "Compile", "Test"},
			map[string][]string{
				"Compile": {"Restore"},
				"Test":    {"Compile", "Restore"},
			})

		assert.Equal(t, 3, g.Len())
		for i, v := range g.Vertices {
			assert.Equal(t, i, v.Index)
		}
		assert.Equal(t, []int{}, g.Vertices[0].Dependencies)
		assert.Equal(t, []int{0}, g.Vertices[1].Dependencies)
		assert.Equal(t, []int{1, 0}, g.Vertices[2].Dependencies)
		assert.Equal(t, []string{"Test", "Restore"}, g.names([]int{2, 0}))
	})

	t.Run("dependency outside the catalog", func(t *testing.T) {
		foreign := &kdef.TargetDefinition{Name: "Foreign"}
		c := kdef.NewCatalog(&kdef.TargetDefinition{Name: "A", Dependencies: []*kdef.TargetDefinition{foreign}})

		_, err := Build(c)
		assert.True(t, errors.Is(err, ErrDependencyNotFound))
		assert.Contains(t, err.Error(), "A -> Foreign")
	})

	t.Run("empty catalog", func(t *testing.T) {
		g, err := Build(kdef.NewCatalog())
		assert.NoError(t, err)
		assert.Equal(t, 0, g.Len())

		order, err := g.Sequence(true)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(order))
	})
}

func TestClone(t *testing.T) {
	g := buildTestGraph(t, []string{"A", "B"}, map[string][]string{"B": {"A"}})

	clone := g.Clone()
	clone.Vertices[1].Dependencies[0] = 1

	assert.Equal(t, []int{0}, g.Vertices[1].Dependencies)
	assert.Equal(t, g.Vertices[0].Target, clone.Vertices[0].Target)
}
