package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/goliatone/go-numfmt/internal/config"
	"github.com/goliatone/go-numfmt/internal/logging"
)

func newLogger(cfg config.Config, w io.Writer) (*log.Entry, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(w),
		logging.WithField("service", "numfmt"),
	), nil
}
