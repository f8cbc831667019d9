// Package logging builds the logrus logger shared by the server and CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Format represents logger output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level  log.Level
	format Format
	output io.Writer
	fields log.Fields
}

// WithLevel sets the minimum level.
func WithLevel(level log.Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithOutput sets the destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithField adds a static field to every entry.
func WithField(key string, value any) Option {
	return func(c *config) {
		if key == "" {
			return
		}
		if c.fields == nil {
			c.fields = log.Fields{}
		}
		c.fields[key] = value
	}
}

// New creates a logger. Defaults are info level text output on stderr.
func New(opts ...Option) *log.Entry {
	cfg := &config{
		level:  log.InfoLevel,
		format: FormatText,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := log.New()
	logger.SetOutput(cfg.output)
	logger.SetLevel(cfg.level)

	if cfg.format == FormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	return logger.WithFields(cfg.fields)
}

// ParseFormat validates a textual format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatText, FormatJSON)
	}
}

// Discard returns a logger that drops everything, for tests and quiet CLI runs.
func Discard() *log.Entry {
	return New(WithOutput(io.Discard), WithLevel(log.PanicLevel))
}
