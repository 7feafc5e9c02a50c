package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"rkanban/pkg/filesystem"
)

// Setup configures the standard logrus logger. When file is set, output goes
// there instead of stderr and the returned closer must be called on exit.
func Setup(level, file string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    file != "",
		QuoteEmptyFields: true,
	})

	if file == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	if err := filesystem.EnsureParent(file); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
