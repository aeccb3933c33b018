package wave

import "github.com/lucien-forge/wave/internal/engine"

// NewMap derives a behaviour holding f(source). The derived node updates
// whenever source changes and the mapped value differs from the cached one;
// mapping two different inputs to an equal output produces no downstream
// change. The node stays subscribed to source until lifespan disposes.
func NewMap[S, T any](lifespan Lifespan, f func(S) T, source Behaviour[S]) Behaviour[T] {
	m := engine.NewMap(bindContext(lifespan), func(v any) any {
		return f(as[S](v))
	}, source.raw())

	return behaviour[T]{m}
}

// NewApplicative derives a behaviour holding fn's current function applied
// to base's current value, updating when either input changes.
func NewApplicative[S, R any](lifespan Lifespan, fn Behaviour[func(S) R], base Behaviour[S]) Behaviour[R] {
	a := engine.NewApplicative(bindContext(lifespan), fn.raw(), base.raw(), func(f, v any) any {
		return as[func(S) R](f)(as[S](v))
	})

	return behaviour[R]{a}
}

// NewJoin collapses a behaviour-of-behaviours into a behaviour of the inner
// value. The result tracks whichever inner behaviour bb currently selects,
// switching its subscription when the selection changes mid-wave.
func NewJoin[T any](lifespan Lifespan, bb Behaviour[Behaviour[T]]) Behaviour[T] {
	f := engine.NewFlatten(bindContext(lifespan), bb.raw(), func(v any) engine.Behaviour {
		return v.(Behaviour[T]).raw()
	})

	return behaviour[T]{f}
}
