package wave

import "github.com/lucien-forge/wave/internal/engine"

// Session groups the detach callbacks of proxies created against it.
// Destroying the session severs every one of them from its peer.
type Session = engine.Session

// SessionOption configures a Session at construction.
type SessionOption = engine.SessionOption

// WithDetachOnPanic makes proxies created under the session detach
// themselves (at wave cleanup) instead of propagating, when a panic is
// raised while they resolve. Default false.
func WithDetachOnPanic(v bool) SessionOption {
	return engine.WithDetachOnPanic(v)
}

// NewProxySession creates a Session that is destroyed when lifespan
// disposes, in addition to being destroyable on its own.
func NewProxySession(lifespan Lifespan, opts ...SessionOption) *Session {
	return engine.NewSession(lifespan, opts...)
}

// NewProxy creates a detachable passthrough over peer, registered against
// session. While attached it behaves as peer; once the session is
// destroyed it stops participating in waves and keeps serving the last
// value it saw. Creating a proxy against a destroyed session is fatal.
func NewProxy[T any](session *Session, peer Behaviour[T]) Behaviour[T] {
	p, err := engine.NewProxy(session, peer.raw())
	if err != nil {
		panic(err)
	}

	return behaviour[T]{p}
}
