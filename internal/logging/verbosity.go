package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity sets the level of logger from the number of -v flags.
// No flag logs warnings and errors; each flag adds one level, up to trace.
func SetVerbosity(logger *log.Logger, v int) {
	verbosity := log.WarnLevel + log.Level(max(v, 0))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	logger.SetLevel(verbosity)
}

// VerbosityName returns the upper-case name of the level of logger.
func VerbosityName(logger *log.Logger) string {
	switch logger.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
