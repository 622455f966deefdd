package bootstrap

import (
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrLoggingInvalidLogOutput = errors.New("unknown logging output format")
	ErrLoggingInvalidLogLevel  = errors.New("unknown logging level")
)

func Logging(cfg Config, out io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Millisecond

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, ErrLoggingInvalidLogLevel
	}

	switch cfg.LogOutput {
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "stdout":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
	default:
		return zerolog.Logger{}, ErrLoggingInvalidLogOutput
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger(), nil
}
