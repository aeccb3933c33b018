package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrorCode categorizes the fatal misuse and integrity failures the engine
// can raise. Benign conditions (deferring against a non-engaged target,
// removing a correlation that was never added) never produce an ErrorCode;
// they are silent no-ops.
type ErrorCode string

const (
	// ErrWavePhaseViolation: a participant was engaged after the wave's
	// engagement phase had closed, a defer was issued by a participant that
	// is not engaged in a wave, or a proxy was detached while participating
	// in a live wave.
	ErrWavePhaseViolation ErrorCode = "WAVE_PHASE_VIOLATION"

	// ErrCrossWaveParticipation: a participant already engaged in one wave
	// was asked to engage in a different, still-live wave.
	ErrCrossWaveParticipation ErrorCode = "CROSS_WAVE_PARTICIPATION"

	// ErrSessionDestroyed: a detach callback was added to, or a proxy was
	// created against, a Session that has already been destroyed.
	ErrSessionDestroyed ErrorCode = "SESSION_DESTROYED"

	// ErrLifespanDisposed: a disposal callback was registered on a lifespan
	// that has already fired.
	ErrLifespanDisposed ErrorCode = "LIFESPAN_DISPOSED"

	// ErrWaveDidNotConverge: resolution ended with engaged count != resolved
	// count, indicating a dependency cycle formed during resolution or a
	// dropped defer edge.
	ErrWaveDidNotConverge ErrorCode = "WAVE_DID_NOT_CONVERGE"
)

// Error is the structured fatal error raised by the engine. Partial wave
// state is not repaired once one of these is raised; callers must treat the
// graph as corrupt.
type Error struct {
	Code ErrorCode

	// Message is a short, human diagnostic string.
	Message string

	// WaveID identifies the wave that was active when the error occurred,
	// if any.
	WaveID uuid.UUID

	// Engaged and Resolved are only populated for ErrWaveDidNotConverge.
	Engaged  int
	Resolved int
}

func (e *Error) Error() string {
	if e.WaveID == uuid.Nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (wave=%s)", e.Code, e.Message, e.WaveID)
}

func newPhaseViolation(w *Wave, msg string) *Error {
	return &Error{Code: ErrWavePhaseViolation, Message: msg, WaveID: w.id}
}

func newCrossWave(w *Wave, msg string) *Error {
	return &Error{Code: ErrCrossWaveParticipation, Message: msg, WaveID: w.id}
}

func newSessionDestroyed(msg string) *Error {
	return &Error{Code: ErrSessionDestroyed, Message: msg}
}

func newLifespanDisposed(msg string) *Error {
	return &Error{Code: ErrLifespanDisposed, Message: msg}
}

func newDidNotConverge(w *Wave, engaged, resolved int) *Error {
	return &Error{
		Code:     ErrWaveDidNotConverge,
		Message:  "resolution ended without every engaged participant resolving",
		WaveID:   w.id,
		Engaged:  engaged,
		Resolved: resolved,
	}
}
