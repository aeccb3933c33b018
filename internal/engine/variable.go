package engine

// Variable is a leaf behaviour whose value is imperatively set. It has no
// upstream dependencies, so its participant resolves immediately at boot.
type Variable struct {
	value   any
	preWave any // value before the first effective write of the current wave
	changed bool

	p *Participant
}

// NewVariable creates a variable holding initial.
func NewVariable(initial any) *Variable {
	v := &Variable{value: initial}
	v.p = NewParticipant(nil, nil, v.onCleanup)
	return v
}

func (v *Variable) Value() any    { return v.value }
func (v *Variable) Change() Event { return FromParticipant(v.p, &v.changed) }

// Set writes a new value inside its own wave, or joins the wave already
// active on this goroutine.
func (v *Variable) Set(value any) {
	GetRuntime().Group(func(w *Wave) {
		v.WavedSet(value, w)
	})
}

// WavedSet writes a new value as part of w. Writing a value semantically
// equal to the current one is a no-op. Multiple writes in one wave are
// fine; the change flag tracks the net pre-wave vs final difference, so an
// A->B->A sequence engages the variable but reports no change.
func (v *Variable) WavedSet(value any, w *Wave) {
	if isEqual(v.value, value) {
		return
	}

	if v.p.State() == StateReady {
		v.preWave = v.value
	}
	v.value = value
	v.changed = !isEqual(v.preWave, v.value)

	if err := w.Engage(v.p); err != nil {
		panic(err)
	}
}

func (v *Variable) onCleanup() {
	v.changed = false
}
