package engine

import "github.com/google/uuid"

// WaveState is a Wave's position in its own state machine.
type WaveState int

const (
	WaveNew WaveState = iota
	WaveEngagement
	WaveResolution
	WaveCleanup
	WaveDead
)

// Wave is a single propagation transaction, run in three strictly
// sequential phases: engagement, resolution, cleanup.
type Wave struct {
	id    uuid.UUID
	state WaveState

	engagementQueue []*Participant
	bootQueue       []*Participant
	resolveNotify   []*Participant
	cleanupQueue    []*Participant

	engagedCount  int
	resolvedCount int
}

// NewWave creates a wave in the NEW state. It does not engage anyone; the
// caller (typically Group, or a Variable's Set) engages the seed
// participants before calling Run.
func NewWave() *Wave {
	return &Wave{id: uuid.New()}
}

// ID returns the wave's identity, used only for diagnostics.
func (w *Wave) ID() uuid.UUID { return w.id }

// State reports the wave's current phase.
func (w *Wave) State() WaveState { return w.state }

// Engage enrolls p as a seed participant of the wave. Exposed so that
// Variable.WavedSet and callers seeding a wave can engage directly;
// engageComplete and mid-wave BindContext construction use the unexported
// engage method of the same name.
func (w *Wave) Engage(p *Participant) error {
	return w.engage(p)
}

// Run executes all three phases in order and panics with an *Error if the
// wave fails to converge. It is idempotent-unsafe to call twice; callers
// (Group) call it exactly once per wave.
func (w *Wave) Run() {
	w.runEngagement()
	w.runResolution()
	w.runCleanup()
	w.state = WaveDead
}

func (w *Wave) runEngagement() {
	for len(w.engagementQueue) > 0 {
		p := w.engagementQueue[0]
		w.engagementQueue = w.engagementQueue[1:]
		p.engageComplete(w)
	}
	if w.state == WaveNew || w.state == WaveEngagement {
		w.state = WaveResolution
	}
}

func (w *Wave) runResolution() {
	boot := w.bootQueue
	w.bootQueue = nil
	for _, p := range boot {
		p.boot(w)
	}

	for len(w.resolveNotify) > 0 {
		p := w.resolveNotify[0]
		w.resolveNotify = w.resolveNotify[1:]
		p.notifyDeps(w)
	}

	if w.resolvedCount != w.engagedCount {
		err := newDidNotConverge(w, w.engagedCount, w.resolvedCount)
		logDidNotConverge(err)
		panic(err)
	}

	w.state = WaveCleanup
}

func (w *Wave) runCleanup() {
	for _, p := range w.cleanupQueue {
		p.cleanup()
	}
	w.cleanupQueue = nil
}
