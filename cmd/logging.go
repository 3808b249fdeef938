package cmd

import (
	"io"
	"time"

	colour "github.com/fatih/color"
	"github.com/rs/zerolog"
)

// newLogger returns a console logger at warn level, or debug when verbose
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    colour.NoColor,
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
