package engine

// Flatten collapses a behaviour-of-behaviours into a behaviour of the inner
// value (monadic join). It tracks whichever inner behaviour the source
// currently selects, re-correlating whenever the selection changes.
type Flatten struct {
	source Behaviour
	unwrap func(any) Behaviour

	inner   Behaviour
	current any
	changed bool

	p *Participant
}

// NewFlatten creates a join over source. unwrap converts source's stored
// value into the engine behaviour it designates; the typed layer supplies
// it since the stored value is a typed wrapper.
func NewFlatten(bc *BindContext, source Behaviour, unwrap func(any) Behaviour) *Flatten {
	f := &Flatten{
		source: source,
		unwrap: unwrap,
		inner:  unwrap(source.Value()),
	}
	f.current = f.inner.Value()
	f.p = NewParticipant(f.onBoot, f.onResolved, f.onCleanup)

	source.Change().AddCorrelatedNode(f.p)
	f.inner.Change().AddCorrelatedNode(f.p)
	bc.Lifespan.OnDispose(func() {
		f.source.Change().RemoveCorrelatedNode(f.p)
		f.inner.Change().RemoveCorrelatedNode(f.p)
	})
	bc.EngageNew(f.p)

	return f
}

func (f *Flatten) Value() any    { return f.current }
func (f *Flatten) Change() Event { return FromParticipant(f.p, &f.changed) }

func (f *Flatten) onBoot(w *Wave) {
	f.source.Change().Defer(f.p)
	// Which inner behaviour to wait on is only known once source has
	// resolved, hence the pre-resolution hook rather than a direct defer.
	f.p.InvokeBeforeResolve(f.onBaseResolved)
}

// onBaseResolved runs after source's resolution (or immediately, when
// source is not in the wave). Deferring on an inner that did not engage is
// a no-op; its value is stable across the wave and safe to read.
func (f *Flatten) onBaseResolved() {
	f.unwrap(f.source.Value()).Change().Defer(f.p)
}

func (f *Flatten) onResolved() {
	sourceChanged := f.source.Change().Value()
	if !sourceChanged && !f.inner.Change().Value() {
		return
	}

	if sourceChanged {
		f.inner.Change().RemoveCorrelatedNode(f.p)
		f.inner = f.unwrap(f.source.Value())
		f.inner.Change().AddCorrelatedNode(f.p)
	}

	v := f.inner.Value()
	if !isEqual(v, f.current) {
		f.current = v
		f.changed = true
	}
}

func (f *Flatten) onCleanup() {
	f.changed = false
}
