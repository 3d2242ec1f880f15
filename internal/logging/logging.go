// Package logging builds the zerolog logger used by the CLI and handed to
// the repository.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Config selects level, format and destination.
type Config struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format Format `yaml:"format" mapstructure:"format"`
	// Output is "stderr" (default), "stdout" or a file path.
	Output string `yaml:"output" mapstructure:"output"`
}

// DefaultConfig is info level, console format, on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatConsole, Output: "stderr"}
}

// New builds a logger from cfg. Unknown levels and formats are errors.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return zerolog.Nop(), err
	}
	return NewWithWriter(out, cfg.Format, level)
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(w io.Writer, format Format, level zerolog.Level) (zerolog.Logger, error) {
	switch format {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "actors").
		Logger(), nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return level, nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, nil
	}
}
