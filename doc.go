// Package ktarget turns a catalog of build targets into a runnable build
// program.
//
// Targets are declared with a kdef.Builder. An App resolves the invoked
// targets into a plan (package kresolve) and executes it (package kexec):
//
//	b := kdef.NewBuilder()
//	restore := b.Target("Restore").Executes(kexec.Command("go", "mod", "download"))
//	b.Target("Compile").DependsOn(restore).Default().Executes(kexec.Command("go", "build", "./..."))
//
//	func main() {
//		os.Exit(ktarget.Main(b.MustBuild(), os.Args[1:]))
//	}
//
// Main understands the flags listed by Usage. Without target names the
// default target is invoked.
package ktarget
