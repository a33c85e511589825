package main

import (
	"context"
	"os"

	"github.com/go-logr/logr"

	"github.com/birdayz/ktarget"
	"github.com/birdayz/ktarget/kdef"
	"github.com/birdayz/ktarget/kexec"
)

func main() {
	b := kdef.NewBuilder()

	clean := b.Target("Clean").
		Description("removes build output").
		Executes(func(ctx context.Context) error {
			logr.FromContextOrDiscard(ctx).Info("Removing output directory", "dir", "bin")
			return os.RemoveAll("bin")
		})

	restore := b.Target("Restore").
		Description("downloads modules").
		Executes(kexec.Command("go", "mod", "download"))

	compile := b.Target("Compile").
		Description("builds all packages").
		DependsOn(restore).
		Default().
		Executes(kexec.Command("go", "build", "./..."))

	test := b.Target("Test").
		Description("runs the tests").
		DependsOn(compile).
		Executes(kexec.Command("go", "test", "./..."))

	pack := b.Target("Pack").
		Description("builds the example binary").
		DependsOn(clean, compile).
		Executes(kexec.Command("go", "build", "-o", "bin/", "./cmd/example_build"))

	b.Target("Publish").
		Description("publishes the binary when RELEASE is set").
		DependsOn(test, pack).
		OnlyWhen(func() bool { return os.Getenv("RELEASE") != "" }).
		WhenSkipped(kdef.SkipDependencies).
		Executes(kexec.Command("ls", "-l", "bin"))

	os.Exit(ktarget.Main(b.MustBuild(), os.Args[1:]))
}
