package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Self-referential selector graphs are legal as long as some topological
// order exists under the current configuration; the engine discovers the
// order anew each wave via late defers.
func TestDependencyFlip(t *testing.T) {
	a := NewVariable(false)

	var b, c Behaviour[bool]
	f := func(v bool) Behaviour[bool] {
		if v {
			return b
		}
		return a
	}
	g := func(v bool) Behaviour[bool] {
		if v {
			return a
		}
		return c
	}

	c = NewJoin(Forever, NewMap[bool, Behaviour[bool]](Forever, f, a))
	b = NewJoin(Forever, NewMap[bool, Behaviour[bool]](Forever, g, a))

	m := NewApplicative(Forever, NewMap(Forever, func(x bool) func(bool) bool {
		return func(y bool) bool { return x && y }
	}, b), c)
	changes := countChanges[bool](m)

	assert.False(t, m.Value())

	a.Set(true)
	assert.True(t, b.Value())
	assert.True(t, c.Value())
	assert.True(t, m.Value())
	assert.Equal(t, 1, *changes)

	a.Set(false)
	assert.False(t, b.Value())
	assert.False(t, c.Value())
	assert.False(t, m.Value())
	assert.Equal(t, 2, *changes)

	a.Set(true)
	assert.True(t, m.Value())
	assert.Equal(t, 3, *changes)
}
