package provision

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Structured logging with levels
var zlog = newLogger(envStr("PROVISIONCTL_LOG_LEVEL", "info"))

func newLogger(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func SetLogLevel(level string) {
	zlog = zlog.Level(parseLevel(level))
}

func debug(format string, a ...any) { zlog.Debug().Msgf(format, a...) }
func info(format string, a ...any)  { zlog.Info().Msgf(format, a...) }
func warn(format string, a ...any)  { zlog.Warn().Msgf(format, a...) }

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
