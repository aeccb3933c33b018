package engine

// ApplicativeBehaviour derives its value by applying a behaviour of a
// function to a behaviour of its argument. The typed layer supplies apply,
// which knows how to call the untyped function value.
type ApplicativeBehaviour struct {
	fn    Behaviour
	base  Behaviour
	apply func(fn, base any) any

	current any
	changed bool

	p *Participant
}

// NewApplicative creates a behaviour holding apply(fn, base), correlated to
// both inputs' change events.
func NewApplicative(bc *BindContext, fn, base Behaviour, apply func(fn, base any) any) *ApplicativeBehaviour {
	a := &ApplicativeBehaviour{
		fn:      fn,
		base:    base,
		apply:   apply,
		current: apply(fn.Value(), base.Value()),
	}
	a.p = NewParticipant(a.onBoot, a.onResolved, a.onCleanup)

	fn.Change().AddCorrelatedNode(a.p)
	base.Change().AddCorrelatedNode(a.p)
	bc.Lifespan.OnDispose(func() {
		fn.Change().RemoveCorrelatedNode(a.p)
		base.Change().RemoveCorrelatedNode(a.p)
	})
	bc.EngageNew(a.p)

	return a
}

func (a *ApplicativeBehaviour) Value() any    { return a.current }
func (a *ApplicativeBehaviour) Change() Event { return FromParticipant(a.p, &a.changed) }

func (a *ApplicativeBehaviour) onBoot(w *Wave) {
	a.fn.Change().Defer(a.p)
	a.base.Change().Defer(a.p)
}

func (a *ApplicativeBehaviour) onResolved() {
	if !a.fn.Change().Value() && !a.base.Change().Value() {
		return
	}

	v := a.apply(a.fn.Value(), a.base.Value())
	if !isEqual(v, a.current) {
		a.current = v
		a.changed = true
	}
}

func (a *ApplicativeBehaviour) onCleanup() {
	a.changed = false
}
