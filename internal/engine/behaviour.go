package engine

import "reflect"

// Behaviour is a node holding a current value and a boolean change event.
// The value is stable between waves; during a wave it is safe to read only
// after the node itself has resolved, which the defer protocol guarantees
// for every well-formed dependent.
type Behaviour interface {
	Value() any
	Change() Event
}

// Equaler lets a value type define its own semantic equality, used to
// suppress no-op updates.
type Equaler interface {
	Equal(other any) bool
}

// isEqual is the engine's semantic equality predicate. Non-comparable
// values (funcs, slices, maps) that don't implement Equaler always count
// as changed.
func isEqual(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}

	return a == b
}

// constBehaviour never changes; its event never fires and never
// participates in a wave.
type constBehaviour struct {
	value any
}

// NewConst creates a behaviour frozen at v.
func NewConst(v any) Behaviour {
	return constBehaviour{value: v}
}

func (c constBehaviour) Value() any    { return c.value }
func (c constBehaviour) Change() Event { return ConstFalseEvent() }
