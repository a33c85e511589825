package kresolve

import (
	"golang.org/x/exp/slices"

	"github.com/birdayz/ktarget/kdef"
)

// claims maps a dependency to the targets that wanted to skip it while some
// other target still needed it. The map lives for one resolution pass.
type claims map[*kdef.TargetDefinition][]*kdef.TargetDefinition

// skipConditional skips every included target whose conditions fail and that
// asks for its dependencies to be skipped along with it.
func (r *Resolver) skipConditional(included, invoked []*kdef.TargetDefinition) {
	wantSkip := make(claims)

	for _, t := range included {
		if t.DependencyBehavior != kdef.SkipDependencies {
			continue
		}
		if t.ConditionsMet() {
			continue
		}
		r.skipWithDependencies(t, included, invoked, wantSkip)
	}
}

// skipWithDependencies skips t, then each dependency that is not invoked and
// that no other included target needs. A dependency is needed by a target
// that depends on it and has not claimed it for skipping yet. While it is
// needed, t records its claim; the dependency is skipped once the last
// remaining dependent runs into it.
func (r *Resolver) skipWithDependencies(t *kdef.TargetDefinition, included, invoked []*kdef.TargetDefinition, wantSkip claims) {
	t.Skip = true
	r.log.V(1).Info("Skipping target", "target", t.Name)

	for _, dep := range t.Dependencies {
		if slices.Contains(invoked, dep) {
			continue
		}

		if neededByOthers(dep, t, included, wantSkip[dep]) {
			wantSkip[dep] = append(wantSkip[dep], t)
			r.log.V(1).Info("Dependency still needed", "target", t.Name, "dependency", dep.Name, "claims", len(wantSkip[dep]))
			continue
		}

		r.skipWithDependencies(dep, included, invoked, wantSkip)
	}
}

func neededByOthers(dep, by *kdef.TargetDefinition, included, claimants []*kdef.TargetDefinition) bool {
	for _, t := range included {
		if t == by || slices.Contains(claimants, t) {
			continue
		}
		if t.DependsOn(dep) {
			return true
		}
	}
	return false
}
