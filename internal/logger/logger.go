// Package logger configures the process-wide zerolog logger for the CLI.
//
// Output goes to stderr through a console writer so that stdout stays
// reserved for prompt text when writing to "-". The level comes from the
// GITDRAFT_LOG environment variable (default info).
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. Call once at process start.
func Setup() {
	level, err := zerolog.ParseLevel(os.Getenv("GITDRAFT_LOG"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
