// Package kresolve decides which targets of a catalog run, and in which order,
// for one invocation.
//
// A resolution pass:
//
//  1. validates the catalog, so a target named after kdef.DefaultTarget fails
//     before anything is ordered
//  2. resolves the invoked names (none means kdef.DefaultTarget)
//  3. orders the whole catalog with kdag
//  4. keeps the invoked targets and everything they transitively depend on
//  5. applies the requested skip list
//  6. cascades skips from targets whose conditions fail onto dependencies
//     nobody else needs
//
// The outcome is a Result. It holds every kept target, skipped or not, in
// dependency-first order plus the invoked, skipped and executing names.
// Nothing is written anywhere else; callers publish the Result as they see fit.
//
// A pass resets and then sets the Skip flag of the catalog's definitions, so
// a catalog must not be resolved concurrently.
package kresolve
