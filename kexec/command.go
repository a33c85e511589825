package kexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"github.com/birdayz/ktarget/kdef"
)

// CommandResult is the captured outcome of an external command.
type CommandResult struct {
	ExitCode int
	Output   []byte
}

// ExitError is returned when a command exits with a non-zero code.
type ExitError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// RunCommand runs an executable and captures its combined stdout and stderr.
// The command is killed when ctx is done. The logger is taken from ctx.
func RunCommand(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	log := logr.FromContextOrDiscard(ctx)
	line := strings.Join(append([]string{name}, args...), " ")

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	log.V(1).Info("Running command", "command", line)
	err := cmd.Run()

	res := &CommandResult{Output: out.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &ExitError{Command: line, ExitCode: res.ExitCode, Output: out.String()}
		}
		return res, fmt.Errorf("run %q: %w", line, err)
	}

	log.V(1).Info("Command finished", "command", line, "bytes", out.Len())
	return res, nil
}

// Command returns an action that runs the executable and logs its output.
func Command(name string, args ...string) kdef.Action {
	return func(ctx context.Context) error {
		res, err := RunCommand(ctx, name, args...)
		if res != nil && len(res.Output) > 0 {
			logr.FromContextOrDiscard(ctx).Info("Command output", "command", name, "output", string(res.Output))
		}
		return err
	}
}
