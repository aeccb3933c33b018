package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicative(t *testing.T) {
	t.Run("applies a behaviour of a function", func(t *testing.T) {
		fn := func(x int) func(int) int {
			return func(y int) int { return 2*x + y }
		}

		v1 := NewVariable(10)
		v2 := NewVariable(3)
		r := NewApplicative(Forever, NewMap(Forever, fn, v1), v2)
		assert.Equal(t, 23, r.Value())

		v1.Set(5)
		assert.Equal(t, 13, r.Value())

		v2.Set(0)
		assert.Equal(t, 10, r.Value())
	})

	t.Run("fires once per wave even when both inputs change", func(t *testing.T) {
		v1 := NewVariable(1)
		v2 := NewVariable(2)

		r := NewApplicative(Forever, NewMap(Forever, func(a int) func(int) int {
			return func(b int) int { return a * b }
		}, v1), v2)
		changes := countChanges[int](r)

		Group(func(w *Wave) {
			v1.WavedSet(3, w)
			v2.WavedSet(4, w)
		})

		assert.Equal(t, 12, r.Value())
		assert.Equal(t, 1, *changes)
	})

	t.Run("suppresses an unchanged result", func(t *testing.T) {
		v1 := NewVariable(2)
		v2 := NewVariable(3)

		// commutative product: swapping the operands changes both inputs
		// but not the result
		r := NewApplicative(Forever, NewMap(Forever, func(a int) func(int) int {
			return func(b int) int { return a * b }
		}, v1), v2)
		changes := countChanges[int](r)

		Group(func(w *Wave) {
			v1.WavedSet(3, w)
			v2.WavedSet(2, w)
		})

		assert.Equal(t, 6, r.Value())
		assert.Equal(t, 0, *changes)
	})

	t.Run("works against a const function", func(t *testing.T) {
		double := NewConst(func(x int) int { return x * 2 })
		v := NewVariable(21)

		r := NewApplicative(Forever, double, v)
		assert.Equal(t, 42, r.Value())

		v.Set(100)
		assert.Equal(t, 200, r.Value())
	})
}
