// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures log.Logger for the given level name and environment.
// Development gets the human-readable console writer, anything else JSON lines.
// An unknown level falls back to info and is reported once the logger is ready.
func Setup(level string, development bool) {
	setup(os.Stderr, level, development)
}

func setup(out io.Writer, level string, development bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if development {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	parsed, err := ParseLevel(level)
	zerolog.SetGlobalLevel(parsed)
	if err != nil {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
	}
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel, err
	}
	return parsed, nil
}
