package log

import (
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing to w. Inside CI or Kubernetes the
// output is JSON, otherwise it is formatted for a terminal. A verbosity above
// zero enables debug output.
func New(w io.Writer, verbosity int) *zerolog.Logger {
	output := w
	if !structured() {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if verbosity > 0 {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &logger
}

// NewLogr is New wrapped as a logr.Logger. Logger names are joined with "/"
// and written to the "logger" field.
func NewLogr(w io.Writer, verbosity int) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	return zerologr.New(New(w, verbosity))
}

func structured() bool {
	return os.Getenv("KUBERNETES_SERVICE_HOST") != "" || os.Getenv("CI") != ""
}
