package wave

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Run("derives and follows its source", func(t *testing.T) {
		v := NewVariable(3)
		m := NewMap(Forever, strconv.Itoa, v)
		assert.Equal(t, "3", m.Value())

		v.Set(4)
		assert.Equal(t, "4", m.Value())
	})

	t.Run("suppresses duplicate source writes", func(t *testing.T) {
		v := NewVariable(3)
		m := NewMap(Forever, func(x int) int { return x + 0 }, v)
		changes := countChanges[int](m)

		v.Set(4)
		assert.Equal(t, 1, *changes)

		v.Set(4)
		assert.Equal(t, 1, *changes)
	})

	t.Run("suppresses changes the mapping collapses", func(t *testing.T) {
		v := NewVariable(3)
		tens := NewMap(Forever, func(x int) int { return x / 10 }, v)
		changes := countChanges[int](tens)

		v.Set(4)
		assert.Equal(t, 0, tens.Value())
		assert.Equal(t, 0, *changes)

		v.Set(40)
		assert.Equal(t, 4, tens.Value())
		assert.Equal(t, 1, *changes)
	})

	t.Run("chains", func(t *testing.T) {
		v := NewVariable(1)
		m := NewMap(Forever, strconv.Itoa, NewMap(Forever, func(x int) int { return x * 10 }, v))

		v.Set(7)
		assert.Equal(t, "70", m.Value())
	})
}
