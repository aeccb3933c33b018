package engine

// Event is an observable boolean "fired this wave" signal bound to a
// Participant.
type Event interface {
	AddCorrelatedNode(p *Participant)
	RemoveCorrelatedNode(p *Participant)
	Defer(p *Participant)
	DeferBy(p *Participant, cb func())
	Value() bool
}

// participantEvent is an Event backed by a live Participant and a pointer to
// the boolean flag that participant's owner sets during the wave (in
// onResolved, or in WavedSet for a Variable) and clears in onCleanup.
type participantEvent struct {
	p    *Participant
	flag *bool
}

// FromParticipant builds the standard Event wiring over a live participant.
func FromParticipant(p *Participant, changedFlag *bool) Event {
	return &participantEvent{p: p, flag: changedFlag}
}

func (e *participantEvent) AddCorrelatedNode(n *Participant) { e.p.AddCorrelatedNode(n) }
func (e *participantEvent) RemoveCorrelatedNode(n *Participant) { e.p.RemoveCorrelatedNode(n) }

// Defer declares that n must wait for e's owning participant to resolve.
func (e *participantEvent) Defer(n *Participant) { n.Defer(e.p) }

// DeferBy declares the same edge as Defer, additionally registering cb to
// run once all of n's pending dependencies, this one included, are
// satisfied and it is about to inspect this event.
func (e *participantEvent) DeferBy(n *Participant, cb func()) { n.DeferCb(e.p, cb) }

func (e *participantEvent) Value() bool { return *e.flag }

// constFalseEvent is the Event used by const-behaviours: it never fires and
// never participates in a wave.
type constFalseEvent struct{}

// ConstFalseEvent is the canonical Event for behaviours that never change.
func ConstFalseEvent() Event { return constFalseEvent{} }

func (constFalseEvent) AddCorrelatedNode(*Participant)    {}
func (constFalseEvent) RemoveCorrelatedNode(*Participant) {}
func (constFalseEvent) Defer(*Participant)                {}
func (constFalseEvent) DeferBy(n *Participant, cb func()) { n.InvokeBeforeResolve(cb) }
func (constFalseEvent) Value() bool                       { return false }
