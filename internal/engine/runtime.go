package engine

// Runtime holds the goroutine-local state the engine needs outside of any
// single Wave or Participant: which wave (if any) is currently live for this
// goroutine, so that nested Group calls join it instead of opening a second,
// disallowed concurrent wave.
type Runtime struct {
	currentWave *Wave
}

func newRuntime() *Runtime {
	return &Runtime{}
}

// CurrentWave returns the wave currently active on this goroutine, or nil.
func (r *Runtime) CurrentWave() *Wave { return r.currentWave }

// Group opens a new wave and runs body against it, then runs the wave --
// unless a wave is already active on this goroutine, in which case body
// joins it directly and Run is not called again (the outer Group call owns
// running it).
func (r *Runtime) Group(body func(*Wave)) *Wave {
	if r.currentWave != nil {
		body(r.currentWave)
		return r.currentWave
	}

	w := NewWave()
	r.currentWave = w
	defer func() { r.currentWave = nil }()

	body(w)
	w.Run()

	return w
}

// Participable abstracts "either an active wave or a no-op" so BindContext
// can uniformly engage a freshly constructed node whether or not one is
// mid-flight.
type Participable interface {
	TryEngage(p *Participant)
}

type waveParticipable struct{ w *Wave }

func (wp waveParticipable) TryEngage(p *Participant) {
	// A participant constructed after the wave's engagement phase has closed
	// cannot retroactively join it. That is an expected, benign outcome, not
	// a misuse -- the node simply starts fresh on the next wave.
	if wp.w.state != WaveNew && wp.w.state != WaveEngagement {
		return
	}
	if err := wp.w.engage(p); err != nil {
		panic(err)
	}
}

type noopParticipable struct{}

func (noopParticipable) TryEngage(*Participant) {}

// CurrentParticipable returns the Participable for whatever wave (if any) is
// active on this goroutine right now.
func (r *Runtime) CurrentParticipable() Participable {
	if r.currentWave == nil {
		return noopParticipable{}
	}
	return waveParticipable{r.currentWave}
}

// BindContext pairs a Lifespan with the current Participable context, so a
// behaviour constructor can simultaneously register disposal and, when
// invoked mid-wave, engage the new node in the running wave.
type BindContext struct {
	Lifespan     Lifespan
	Participable Participable
}

// CurrentBindContext captures the present moment's wave context paired with
// the given lifespan.
func (r *Runtime) CurrentBindContext(lifespan Lifespan) *BindContext {
	return &BindContext{Lifespan: lifespan, Participable: r.CurrentParticipable()}
}

// EngageNew engages p in the bind context's active wave, if any.
func (bc *BindContext) EngageNew(p *Participant) {
	bc.Participable.TryEngage(p)
}
