package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// InitLogger builds the console logger and installs it as the default context logger.
// An unknown level falls back to info.
func InitLogger(level string) *zerolog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger builds a console logger writing to out.
func NewLogger(out io.Writer, level string) *zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}

	logger := zerolog.New(consoleWriter).
		With().
		Timestamp().
		Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithRunID returns a context whose logger tags every event with a fresh run id.
func WithRunID(ctx context.Context) (context.Context, string) {
	runID := xid.New().String()
	l := Logger(ctx).With().Str("run_id", runID).Logger()
	return l.WithContext(ctx), runID
}
