package engine

// State is a Participant's position in the per-wave state machine.
type State int

const (
	StateReady State = iota
	StateEngaged
	StateResolved
)

// Participant is the per-node wave participation handle. Every behaviour
// that can change (Variable, MapBehaviour, ApplicativeBehaviour, Flatten,
// Proxy) owns exactly one Participant.
type Participant struct {
	state State
	wave  *Wave // nil when READY; the wave this participant is engaged/resolved in otherwise

	// correlated is the multiset of participants this one drags into a wave
	// during engagement, without imposing any resolution order on them.
	correlated map[*Participant]int

	// downstream is the multiset of participants that have deferred on this
	// one -- i.e. are waiting for it to resolve.
	downstream map[*Participant]int

	pendingDeps int
	preResolve  []func()

	onBoot     func(w *Wave)
	onResolved func()
	onCleanup  func()
}

// NewParticipant creates a READY participant with the given lifecycle hooks.
// Any hook may be nil.
func NewParticipant(onBoot func(w *Wave), onResolved func(), onCleanup func()) *Participant {
	return &Participant{
		correlated: make(map[*Participant]int),
		downstream: make(map[*Participant]int),
		onBoot:     onBoot,
		onResolved: onResolved,
		onCleanup:  onCleanup,
	}
}

// State reports the participant's current state.
func (p *Participant) State() State { return p.state }

// AddCorrelatedNode adds n to this participant's correlated multiset. A
// participant correlated N times requires N RemoveCorrelatedNode calls to be
// fully severed.
func (p *Participant) AddCorrelatedNode(n *Participant) {
	p.correlated[n]++
}

// RemoveCorrelatedNode removes a single occurrence of n from the correlated
// multiset. Removing a correlation that does not exist is a benign no-op.
func (p *Participant) RemoveCorrelatedNode(n *Participant) {
	count, ok := p.correlated[n]
	if !ok {
		return
	}
	if count <= 1 {
		delete(p.correlated, n)
		return
	}
	p.correlated[n] = count - 1
}

// CorrelationCount returns how many times n is currently correlated to p.
// Exported for reference-counting test fixtures; not meant for use outside
// _test.go files.
func CorrelationCount(p *Participant, n *Participant) int {
	return p.correlated[n]
}

// engage enrolls p into w. Idempotent if p is already engaged in w;
// fatal if p is engaged in a different wave, or if w is past its
// engagement phase.
func (w *Wave) engage(p *Participant) error {
	if p.wave == w {
		return nil
	}
	if p.wave != nil {
		return newCrossWave(w, "participant is already engaged in a different wave")
	}
	if w.state != WaveNew && w.state != WaveEngagement {
		return newPhaseViolation(w, "cannot engage a participant once engagement has closed")
	}

	p.wave = w
	p.state = StateEngaged

	if w.state == WaveNew {
		w.state = WaveEngagement
	}

	w.engagementQueue = append(w.engagementQueue, p)
	w.bootQueue = append(w.bootQueue, p)
	w.engagedCount++

	return nil
}

// engageComplete pulls every correlated participant into w. Called once per
// participant as the engagement queue drains.
func (p *Participant) engageComplete(w *Wave) {
	for n := range p.correlated {
		if err := w.engage(n); err != nil {
			panic(err)
		}
	}
}

// Defer declares that p must wait for target to resolve before p itself can
// resolve. Called during p's own resolution (from onBoot or a pre-resolution
// callback). If target is not ENGAGED -- a different wave, already resolved,
// or never engaged at all -- this is a benign no-op: the dependency is
// treated as already satisfied.
func (p *Participant) Defer(target *Participant) {
	if p.state != StateEngaged {
		panic(&Error{Code: ErrWavePhaseViolation, Message: "defer issued by a participant that is not engaged in a wave"})
	}
	if target.state != StateEngaged || target.wave != p.wave {
		return
	}

	p.pendingDeps++
	target.downstream[p]++
}

// DeferCb enqueues a pre-resolution callback and pairs it with a defer on
// target.
func (p *Participant) DeferCb(target *Participant, cb func()) {
	p.Defer(target)
	p.preResolve = append(p.preResolve, cb)
}

// InvokeBeforeResolve enqueues a pre-resolution callback with no accompanying
// defer. The callback runs once p's pendingDeps reaches zero, and may itself
// install new defers (which re-suspends p).
func (p *Participant) InvokeBeforeResolve(cb func()) {
	p.preResolve = append(p.preResolve, cb)
}

// boot runs onBoot (if any) and then attempts to resolve p.
func (p *Participant) boot(w *Wave) {
	if p.onBoot != nil {
		p.onBoot(w)
	}
	p.tryResolve(w)
}

// tryResolve drains ready pre-resolution callbacks while pendingDeps is
// zero, then either resolves or suspends until upstream resolution.
func (p *Participant) tryResolve(w *Wave) {
	if p.state != StateEngaged {
		return
	}

	for p.pendingDeps == 0 && len(p.preResolve) > 0 {
		cb := p.preResolve[0]
		p.preResolve = p.preResolve[1:]
		cb()
	}

	if p.pendingDeps > 0 {
		return
	}

	p.state = StateResolved
	if p.onResolved != nil {
		p.onResolved()
	}

	w.resolvedCount++
	w.resolveNotify = append(w.resolveNotify, p)
	w.cleanupQueue = append(w.cleanupQueue, p)
}

// notifyDeps drains p's downstream multiset, decrementing each listener's
// pendingDeps and attempting to resolve it if it reaches zero.
func (p *Participant) notifyDeps(w *Wave) {
	downstream := p.downstream
	p.downstream = make(map[*Participant]int)

	for listener, count := range downstream {
		for i := 0; i < count; i++ {
			listener.pendingDeps--
		}
		if listener.pendingDeps == 0 {
			listener.tryResolve(w)
		}
	}
}

// cleanup transitions a resolved participant back to READY and runs
// onCleanup.
func (p *Participant) cleanup() {
	p.state = StateReady
	p.wave = nil
	if p.onCleanup != nil {
		p.onCleanup()
	}
}
