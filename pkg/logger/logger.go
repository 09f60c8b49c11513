package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs a JSON slog handler as the default logger.
func Init(level string) *slog.Logger {
	return InitTo(os.Stdout, level)
}

func InitTo(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
