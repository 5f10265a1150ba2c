package singleton

import (
	"log/slog"
	"time"
)

func logRegistered(logger *slog.Logger, typeName string, kind Kind) {
	if logger == nil {
		return
	}
	logger.Debug("singleton registered",
		slog.String("type", typeName),
		slog.String("kind", kind.String()),
	)
}

func logCreated(logger *slog.Logger, typeName string, elapsed time.Duration) {
	if logger == nil {
		return
	}
	logger.Debug("singleton created",
		slog.String("type", typeName),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
	)
}

func logCreateFailed(logger *slog.Logger, typeName string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("singleton construction failed",
		slog.String("type", typeName),
		slog.String("error", err.Error()),
	)
}

func logUnregistered(logger *slog.Logger, typeName string, created bool) {
	if logger == nil {
		return
	}
	logger.Debug("singleton unregistered",
		slog.String("type", typeName),
		slog.Bool("created", created),
	)
}

func logDisposed(logger *slog.Logger, typeName string, capability bool) {
	if logger == nil {
		return
	}
	logger.Debug("singleton disposed",
		slog.String("type", typeName),
		slog.Bool("capability", capability),
	)
}

func logDisposeFailed(logger *slog.Logger, typeName string, err error) {
	if logger == nil {
		return
	}
	logger.Error("singleton dispose failed",
		slog.String("type", typeName),
		slog.String("error", err.Error()),
	)
}
