package cgm

import (
	"log/slog"
	"sync/atomic"

	"github.com/tsawler/cgm/internal/logging"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with decoding from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.Nop())
}

// SetLogger configures the logger used by Decode and by loaders without
// their own logger. By default cgm produces no log output.
// Pass nil to restore the silent default.
//
// Log levels used by cgm:
//   - [slog.LevelDebug]: skipped elements, picture boundaries
//   - [slog.LevelWarn]: soft-degraded elements (bad colour length, scaling mode length)
//
// Example:
//
//	cgm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(logging.OrNop(l))
}

// Logger returns the current logger used by cgm.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
