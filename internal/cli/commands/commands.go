package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ccollicutt/loglens/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// newFormatter builds the output formatter for a command.
func newFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	f, ok := output.New(format, opts)
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
	return f, nil
}

// newLogger returns the engine logger. Development output goes to
// stderr, keeping stdout clean for reports.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
