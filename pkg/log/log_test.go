package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewLogrJSON(t *testing.T) {
	t.Setenv("CI", "true")

	var buf bytes.Buffer
	l := NewLogr(&buf, 0).WithName("resolve").WithName("skip")

	l.Info("Resolved targets", "target", "Compile")
	l.V(1).Info("hidden")

	out := buf.String()
	assert.Contains(t, out, `"logger":"resolve/skip"`)
	assert.Contains(t, out, `"target":"Compile"`)
	assert.Contains(t, out, "Resolved targets")
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewLogrVerbose(t *testing.T) {
	t.Setenv("CI", "true")

	var buf bytes.Buffer
	l := NewLogr(&buf, 1)

	l.V(1).Info("shown")

	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsole(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("KUBERNETES_SERVICE_HOST", "")

	var buf bytes.Buffer
	New(&buf, 0).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.False(t, strings.HasPrefix(out, "{"))
}
