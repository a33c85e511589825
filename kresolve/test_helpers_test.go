package kresolve

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"golang.org/x/exp/slices"

	"github.com/birdayz/ktarget/kdef"
)

func never() bool { return false }

// calibrationCatalog mirrors the reference scenarios: one shared dependency
// and several targets whose conditions fail with different skip behaviors.
func calibrationCatalog(t *testing.T) *kdef.Catalog {
	t.Helper()

	b := kdef.NewBuilder()
	dependency := b.Target("Dependency")
	dependency1 := b.Target("Dependency1").DependsOn(dependency)
	b.Target("ExecuteSkipDependencies").
		DependsOn(dependency).
		OnlyWhen(never).
		WhenSkipped(kdef.SkipDependencies)
	b.Target("ExecuteImplicitBehavior").
		DependsOn(dependency).
		OnlyWhen(never)
	b.Target("ExecuteExecuteDependencies").
		DependsOn(dependency).
		OnlyWhen(never).
		WhenSkipped(kdef.ExecuteDependencies)
	b.Target("Execute").
		DependsOn(dependency).
		Default()
	b.Target("ExecuteDependency1SkipDependencies").
		DependsOn(dependency1).
		OnlyWhen(never).
		WhenSkipped(kdef.SkipDependencies)

	return b.MustBuild()
}

func newTestResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	opts = append([]Option{WithLogr(testr.NewWithOptions(t, testr.Options{Verbosity: 1}))}, opts...)
	return New(opts...)
}

// runnableNames returns the sorted names of the targets that would actually run.
func runnableNames(res *Result) []string {
	names := kdef.Names(res.Runnable())
	slices.Sort(names)
	return names
}
