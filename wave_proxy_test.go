package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProxy(t *testing.T) {
	t.Run("passes through while the session lives", func(t *testing.T) {
		v := NewVariable(10)
		session := NewProxySession(Forever)

		p := NewProxy[int](session, v)
		double := NewMap(Forever, func(x int) int { return x * 2 }, p)

		v.Set(21)
		assert.Equal(t, 21, p.Value())
		assert.Equal(t, 42, double.Value())
	})

	t.Run("destroying the session severs the proxy", func(t *testing.T) {
		v := NewVariable(1)
		session := NewProxySession(Forever)

		p := NewProxy[int](session, v)
		tracked := NewMap(Forever, func(x int) int { return x + 1 }, p)
		changes := countChanges[int](tracked)

		v.Set(2)
		assert.Equal(t, 3, tracked.Value())
		assert.Equal(t, 1, *changes)

		session.Destroy()

		v.Set(50)
		assert.Equal(t, 2, p.Value())
		assert.Equal(t, 3, tracked.Value())
		assert.Equal(t, 1, *changes)
	})

	t.Run("a session under a lifespan detaches on disposal", func(t *testing.T) {
		scope := NewLifespanScope()
		v := NewVariable("live")
		session := NewProxySession(scope)

		p := NewProxy[string](session, v)
		scope.Dispose()

		v.Set("after")
		assert.Equal(t, "live", p.Value())
	})

	t.Run("proxying against a destroyed session is fatal", func(t *testing.T) {
		session := NewProxySession(Forever)
		session.Destroy()

		defer func() {
			err, ok := recover().(*Error)
			assert.True(t, ok)
			assert.Equal(t, ErrSessionDestroyed, err.Code)
		}()
		NewProxy[int](session, NewVariable(1))
	})
}
