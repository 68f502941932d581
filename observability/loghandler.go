package observability

import (
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Tee returns a handler that writes to local and, when log export is
// enabled, also to the OTLP handler. Without export it returns local.
func Tee(local slog.Handler) slog.Handler {
	remote := LogHandler()
	if remote == nil {
		return local
	}
	return fanout(local, remote)
}

// fanout sends each record to every handler that accepts its level.
func fanout(handlers ...slog.Handler) slog.Handler {
	return slogmulti.Fanout(handlers...)
}
