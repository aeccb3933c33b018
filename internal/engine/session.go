package engine

// Session groups proxy-detach callbacks. Destroy runs every callback once,
// then marks the session dead; further additions fail with
// ErrSessionDestroyed.
type Session struct {
	destroyed bool
	detaches  []func()

	detachOnPanic bool
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithDetachOnPanic controls whether a panic raised inside a proxy's own
// resolution step (its read of the peer's change flag and value) is
// recovered and the proxy detached at cleanup, instead of propagating. A
// panic raised while the peer itself resolves is not recovered. Default
// false.
func WithDetachOnPanic(v bool) SessionOption {
	return func(s *Session) { s.detachOnPanic = v }
}

// NewSession creates a Session that is destroyed whenever lifespan disposes.
func NewSession(lifespan Lifespan, opts ...SessionOption) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	lifespan.OnDispose(s.Destroy)
	return s
}

// AddDetach registers a detach callback. Fails if the session is already
// destroyed.
func (s *Session) AddDetach(cb func()) error {
	if s.destroyed {
		return newSessionDestroyed("cannot add a detach callback to a destroyed session")
	}
	s.detaches = append(s.detaches, cb)
	return nil
}

// DetachOnPanic reports whether proxies created under this session should
// self-detach on a panic during resolution.
func (s *Session) DetachOnPanic() bool { return s.detachOnPanic }

// Destroyed reports whether Destroy has already run.
func (s *Session) Destroyed() bool { return s.destroyed }

// Destroy runs every registered detach callback once and marks the session
// dead. Idempotent.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true

	detaches := s.detaches
	s.detaches = nil
	for _, d := range detaches {
		d()
	}
}
