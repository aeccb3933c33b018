package engine

// Proxy is a detachable passthrough over a peer behaviour. While attached
// its change event forwards straight to the peer's participant, so
// dependents built on the proxy schedule against the peer itself; the proxy
// keeps a counted record of every forwarded correlation so detaching can
// return the peer to its pre-proxy baseline.
type Proxy struct {
	peer     Behaviour
	session  *Session
	attached bool

	current       any
	detachPending bool

	// forwarded counts correlations added to the peer on behalf of the
	// proxy's own dependents.
	forwarded map[*Participant]int

	p *Participant
}

// NewProxy creates a proxy over peer, registered for detach on session
// destruction. Fails if the session is already destroyed.
func NewProxy(session *Session, peer Behaviour) (*Proxy, error) {
	pr := &Proxy{
		peer:      peer,
		session:   session,
		attached:  true,
		current:   peer.Value(),
		forwarded: make(map[*Participant]int),
	}
	pr.p = NewParticipant(pr.onBoot, pr.onResolved, pr.onCleanup)

	if err := session.AddDetach(pr.Detach); err != nil {
		return nil, err
	}
	peer.Change().AddCorrelatedNode(pr.p)

	return pr, nil
}

// Value reads through to the peer while attached; after detach it keeps
// serving the last value seen.
func (pr *Proxy) Value() any {
	if pr.attached {
		return pr.peer.Value()
	}
	return pr.current
}

func (pr *Proxy) Change() Event { return &proxyEvent{pr} }

// Attached reports whether the proxy is still connected to its peer.
func (pr *Proxy) Attached() bool { return pr.attached }

// Detach severs the proxy from its peer: the proxy's own correlation and
// every correlation it forwarded for dependents are removed. Idempotent.
// Detaching while the proxy participates in a live wave is a fatal misuse.
func (pr *Proxy) Detach() {
	if !pr.attached {
		return
	}
	if pr.p.State() != StateReady {
		panic(newPhaseViolation(pr.p.wave, "cannot detach a proxy participating in a live wave"))
	}
	pr.detachNow()
}

func (pr *Proxy) detachNow() {
	pr.attached = false
	pr.peer.Change().RemoveCorrelatedNode(pr.p)
	for n, count := range pr.forwarded {
		for i := 0; i < count; i++ {
			pr.peer.Change().RemoveCorrelatedNode(n)
		}
	}
	pr.forwarded = make(map[*Participant]int)
}

func (pr *Proxy) onBoot(w *Wave) {
	if pr.attached {
		pr.peer.Change().Defer(pr.p)
	}
}

func (pr *Proxy) onResolved() {
	if !pr.attached {
		return
	}

	if pr.session.DetachOnPanic() {
		defer func() {
			if r := recover(); r != nil {
				pr.detachPending = true
			}
		}()
	}

	if pr.peer.Change().Value() {
		pr.current = pr.peer.Value()
	}
}

func (pr *Proxy) onCleanup() {
	if pr.detachPending {
		pr.detachPending = false
		pr.detachNow()
	}
}

// proxyEvent forwards the full event surface to the peer while the proxy
// is attached. Once detached, correlation and defer become no-ops, the
// fired flag reads false, and DeferBy still runs its callback as a plain
// pre-resolution hook so dependents keep making progress.
type proxyEvent struct {
	pr *Proxy
}

func (e *proxyEvent) AddCorrelatedNode(n *Participant) {
	if !e.pr.attached {
		return
	}
	e.pr.peer.Change().AddCorrelatedNode(n)
	e.pr.forwarded[n]++
}

func (e *proxyEvent) RemoveCorrelatedNode(n *Participant) {
	if !e.pr.attached || e.pr.forwarded[n] == 0 {
		return
	}
	e.pr.peer.Change().RemoveCorrelatedNode(n)
	if e.pr.forwarded[n] <= 1 {
		delete(e.pr.forwarded, n)
		return
	}
	e.pr.forwarded[n]--
}

func (e *proxyEvent) Defer(n *Participant) {
	if !e.pr.attached {
		return
	}
	e.pr.peer.Change().Defer(n)
}

func (e *proxyEvent) DeferBy(n *Participant, cb func()) {
	if !e.pr.attached {
		n.InvokeBeforeResolve(cb)
		return
	}
	e.pr.peer.Change().DeferBy(n, cb)
}

func (e *proxyEvent) Value() bool {
	if !e.pr.attached {
		return false
	}
	return e.pr.peer.Change().Value()
}
