// Package logging configures the process-wide zerolog logger. Diagnostic
// output goes to stderr; validation results are rendered separately on
// stdout and never pass through here.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger for the given verbosity: 0 warn,
// 1 info, 2 debug, 3+ trace.
func Setup(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// Get returns a logger tagged with the component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
