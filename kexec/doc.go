// Package kexec runs resolved targets.
//
// Executor takes targets in dependency-first order, as produced by
// kresolve, and runs each one once its dependencies in the list are done.
// Independent targets run concurrently up to the configured parallelism.
// Skipped targets and targets whose conditions fail at execution time are
// reported as skipped and count as done for their dependents. A target whose
// dependency failed is not run.
//
// RunCommand and Command wrap external executables: they capture combined
// output and the exit code, and fail with *ExitError on a non-zero exit.
package kexec
