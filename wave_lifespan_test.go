package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifespan(t *testing.T) {
	t.Run("disposal unsubscribes derived behaviours", func(t *testing.T) {
		scope := NewLifespanScope()

		v := NewVariable(1)
		m := NewMap(scope, func(x int) int { return x + 1 }, v)

		v.Set(2)
		assert.Equal(t, 3, m.Value())

		scope.Dispose()

		v.Set(10)
		assert.Equal(t, 3, m.Value())
	})

	t.Run("a parented scope disposes with its parent", func(t *testing.T) {
		parent := NewLifespanScope()
		child := NewLifespanScope(WithParent(parent))

		v := NewVariable(1)
		m := NewMap(child, func(x int) int { return x * 10 }, v)

		parent.Dispose()

		v.Set(5)
		assert.Equal(t, 10, m.Value())
	})

	t.Run("registering on a disposed scope is fatal", func(t *testing.T) {
		scope := NewLifespanScope()
		scope.Dispose()

		defer func() {
			err, ok := recover().(*Error)
			assert.True(t, ok)
			assert.Equal(t, ErrLifespanDisposed, err.Code)
		}()
		NewMap(scope, func(x int) int { return x }, NewVariable(1))
	})

	t.Run("forever-scoped behaviours stay subscribed", func(t *testing.T) {
		v := NewVariable(1)
		m := NewMap(Forever, func(x int) int { return -x }, v)

		v.Set(9)
		assert.Equal(t, -9, m.Value())
	})
}
