package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the application logger writing human-readable console output.
// Unrecognized level strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
