package wave

import "github.com/lucien-forge/wave/internal/engine"

// Lifespan is a disposal scope: a one-shot publisher of disposal
// callbacks. Derived behaviours register their unsubscription against the
// lifespan they are built under.
type Lifespan = engine.Lifespan

// Forever is the infinite lifespan: registrations are accepted but never
// fire.
var Forever = engine.Forever

// Scope is a disposable Lifespan.
type Scope = engine.Scope

// ScopeOption configures a Scope at construction.
type ScopeOption func(*scopeSettings)

type scopeSettings struct {
	parent Lifespan
}

// WithParent ties the new scope to parent: disposing the parent disposes
// the scope too.
func WithParent(parent Lifespan) ScopeOption {
	return func(s *scopeSettings) { s.parent = parent }
}

// NewLifespanScope creates a disposal scope. Dispose runs every registered
// callback exactly once; registering on an already-disposed scope is fatal.
func NewLifespanScope(opts ...ScopeOption) *Scope {
	var settings scopeSettings
	for _, opt := range opts {
		opt(&settings)
	}

	if settings.parent != nil {
		return engine.NewChild(settings.parent)
	}
	return engine.NewScope()
}
