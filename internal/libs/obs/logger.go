// Package obs holds logging and metrics shared by the api and cli commands.
package obs

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service is attached to every log line
const Service = "aidocs"

// InitLogger sets the global level. Unknown levels fall back to info.
// Logs always go to stderr so command output on stdout stays clean.
func InitLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Pretty print in development
	if os.Getenv("ENV") == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Logger returns a logger tagged with the service and component names
func Logger(component string) zerolog.Logger {
	return log.With().
		Str("service", Service).
		Str("component", component).
		Logger()
}
