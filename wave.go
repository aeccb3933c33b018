// Package wave is a small functional-reactive runtime: a graph of stateful
// behaviours recomputed in response to input changes, coordinated by a
// propagation transaction (the wave) that updates every affected node
// exactly once, in dependency order.
package wave

import (
	"log/slog"

	"github.com/lucien-forge/wave/internal/engine"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Behaviour is a node holding a current value of type T and a boolean
// change event. Values are stable between waves; the change event reads
// true only while a wave in which this behaviour changed is resolving.
type Behaviour[T any] interface {
	Value() T
	Change() Event

	raw() engine.Behaviour
}

// behaviour adapts an untyped engine behaviour to the typed surface.
type behaviour[T any] struct {
	b engine.Behaviour
}

func (w behaviour[T]) Value() T              { return as[T](w.b.Value()) }
func (w behaviour[T]) Change() Event         { return Event{w.b.Change()} }
func (w behaviour[T]) raw() engine.Behaviour { return w.b }

// Event is a behaviour's "changed this wave" signal.
type Event struct {
	ev engine.Event
}

// Value reports whether the owning behaviour changed during the currently
// resolving wave. Always false outside a wave.
func (e Event) Value() bool { return e.ev.Value() }

// Wave is a single propagation transaction.
type Wave = engine.Wave

// Group constructs a wave, hands it to body for variable writes, then runs
// it. Calling Group while a wave is already active on this goroutine joins
// that wave instead: the writes become part of the enclosing transaction.
func Group(body func(*Wave)) {
	engine.GetRuntime().Group(body)
}

// Error is the structured fatal error raised on engine misuse or a wave
// that fails to converge.
type Error = engine.Error

// ErrorCode categorizes fatal errors.
type ErrorCode = engine.ErrorCode

const (
	ErrWavePhaseViolation     = engine.ErrWavePhaseViolation
	ErrCrossWaveParticipation = engine.ErrCrossWaveParticipation
	ErrSessionDestroyed       = engine.ErrSessionDestroyed
	ErrLifespanDisposed       = engine.ErrLifespanDisposed
	ErrWaveDidNotConverge     = engine.ErrWaveDidNotConverge
)

// SetLogger overrides the diagnostic logger consulted right before a wave
// fails to converge. Defaults to slog.Default().
func SetLogger(l *slog.Logger) {
	engine.SetLogger(l)
}

func bindContext(lifespan Lifespan) *engine.BindContext {
	return engine.GetRuntime().CurrentBindContext(lifespan)
}
