// Package kdef declares build targets and the catalog they live in.
//
// # Overview
//
// A target is a named unit of build work. It can depend on other targets,
// carry run conditions and actions, and decide what happens to its
// dependencies when its own conditions fail:
//
//	b := kdef.NewBuilder()
//
//	restore := b.Target("Restore").
//	    Executes(restorePackages)
//
//	compile := b.Target("Compile").
//	    DependsOn(restore).
//	    Default().
//	    Executes(compileSources)
//
//	b.Target("Publish").
//	    DependsOn(compile).
//	    OnlyWhen(func() bool { return os.Getenv("RELEASE_TAG") != "" }).
//	    WhenSkipped(kdef.SkipDependencies).
//	    Executes(publishArtifacts)
//
//	catalog := b.MustBuild()
//
// # Validation
//
// Build validates the whole catalog and reports every problem at once:
//
//   - target names must be non-empty and unique (case-insensitive)
//   - no target may be named after the DefaultTarget sentinel
//   - every dependency must be a target of the same catalog
//
// All validation errors wrap sentinel errors (ErrReservedName,
// ErrDuplicateTarget, ...) that can be checked with errors.Is().
//
// # Mutability
//
// Definitions are read-only after Build, except for the Skip flag, which a
// resolution pass resets and then sets while deciding what to execute.
// Builder is NOT safe for concurrent use.
package kdef
