// Package logging configures logrus for the hhc command.
package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Format names accepted by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how a logger is set up.
type Options struct {
	// Verbosity is the number of -v flags given on the command line.
	Verbosity int
	// Format is FormatText or FormatJSON; empty means text.
	Format string
	// Output receives log lines. Nil leaves the logger output unchanged.
	Output io.Writer
}

// Setup applies opts to logger, or to the standard logger when logger is nil.
func Setup(logger *log.Logger, opts Options) error {
	if logger == nil {
		logger = log.StandardLogger()
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		logger.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case FormatJSON:
		logger.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}

	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}
	SetVerbosity(logger, opts.Verbosity)
	logger.Debugf("Verbosity level: %v", VerbosityName(logger))

	return nil
}
