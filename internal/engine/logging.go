package engine

import "log/slog"

// logger is the package-wide diagnostic logger. It is only ever consulted
// right before a wave panics with ErrWaveDidNotConverge; the engine is
// otherwise silent on its hot path.
var logger = slog.Default()

// SetLogger overrides the package logger. If never called, slog.Default()
// is used.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger = l
}

func logDidNotConverge(err *Error) {
	logger.Error("wave did not converge",
		slog.String("wave_id", err.WaveID.String()),
		slog.String("code", string(err.Code)),
		slog.Int("engaged", err.Engaged),
		slog.Int("resolved", err.Resolved),
	)
}
