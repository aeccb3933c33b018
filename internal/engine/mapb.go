package engine

// MapBehaviour derives its value by mapping a single source behaviour
// through a function.
type MapBehaviour struct {
	mapper  func(any) any
	source  Behaviour
	current any
	changed bool

	p *Participant
}

// NewMap creates a behaviour holding mapper(source). The node stays
// correlated to source's change event until bc's lifespan disposes it.
func NewMap(bc *BindContext, mapper func(any) any, source Behaviour) *MapBehaviour {
	m := &MapBehaviour{
		mapper:  mapper,
		source:  source,
		current: mapper(source.Value()),
	}
	m.p = NewParticipant(m.onBoot, m.onResolved, m.onCleanup)

	source.Change().AddCorrelatedNode(m.p)
	bc.Lifespan.OnDispose(func() {
		source.Change().RemoveCorrelatedNode(m.p)
	})
	bc.EngageNew(m.p)

	return m
}

func (m *MapBehaviour) Value() any    { return m.current }
func (m *MapBehaviour) Change() Event { return FromParticipant(m.p, &m.changed) }

func (m *MapBehaviour) onBoot(w *Wave) {
	m.source.Change().Defer(m.p)
}

func (m *MapBehaviour) onResolved() {
	if !m.source.Change().Value() {
		return
	}

	v := m.mapper(m.source.Value())
	if !isEqual(v, m.current) {
		m.current = v
		m.changed = true
	}
}

func (m *MapBehaviour) onCleanup() {
	m.changed = false
}
