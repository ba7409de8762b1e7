package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a logger that writes human-readable records to w.
func NewLogger(w io.Writer, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      LogLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}
