// Package logging builds the logr.Logger used across kscaffold.
//
// The logger is backed by zap through controller-runtime's adapter, so the
// same sink serves the CLI and any client-go code that logs through logr.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Format selects the encoder used for log lines.
type Format string

const (
	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"

	// FormatEnvVar overrides the log format when set.
	FormatEnvVar = "KSCAFFOLD_LOG_FORMAT"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case ConsoleFormat, JSONFormat:
		return f, nil
	case "":
		return ConsoleFormat, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be one of %s, %s", s, ConsoleFormat, JSONFormat)
	}
}

// New returns a logger writing to w. Verbose enables V(1) debug output.
func New(w io.Writer, verbose bool, format Format) logr.Logger {
	opts := []zap.Opts{
		zap.WriteTo(w),
		zap.UseDevMode(verbose),
	}
	if format == JSONFormat {
		opts = append(opts, zap.JSONEncoder())
	} else {
		opts = append(opts, zap.ConsoleEncoder())
	}
	return zap.New(opts...)
}

// NewFromEnv returns a stderr logger whose format comes from FormatEnvVar.
// An invalid value falls back to the console format.
func NewFromEnv(verbose bool) logr.Logger {
	format, err := ParseFormat(os.Getenv(FormatEnvVar))
	if err != nil {
		format = ConsoleFormat
	}
	return New(os.Stderr, verbose, format)
}

// IntoContext stores the logger in ctx.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
