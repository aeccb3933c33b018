package wave

import "github.com/lucien-forge/wave/internal/engine"

// Variable is a leaf behaviour whose value is imperatively set.
type Variable[T any] struct {
	v *engine.Variable
}

// NewVariable creates a variable holding initial.
func NewVariable[T any](initial T) *Variable[T] {
	return &Variable[T]{engine.NewVariable(initial)}
}

// Value reads the variable's current value.
func (x *Variable[T]) Value() T { return as[T](x.v.Value()) }

// Change is the variable's "changed this wave" event.
func (x *Variable[T]) Change() Event { return Event{x.v.Change()} }

func (x *Variable[T]) raw() engine.Behaviour { return x.v }

// Set writes a new value inside its own wave, or joins the wave already
// active on this goroutine. Writing a value equal to the current one
// produces no change.
func (x *Variable[T]) Set(v T) { x.v.Set(v) }

// WavedSet writes a new value as part of an explicitly supplied wave, for
// batching several writes into one transaction under Group.
func (x *Variable[T]) WavedSet(v T, w *Wave) { x.v.WavedSet(v, w) }

// NewConst creates a behaviour frozen at v. Its change event never fires.
func NewConst[T any](v T) Behaviour[T] {
	return behaviour[T]{engine.NewConst(v)}
}
