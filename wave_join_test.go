package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	t.Run("follows the selected inner behaviour", func(t *testing.T) {
		v1 := NewVariable("Abc")
		v2 := NewVariable("Def")
		vb := NewVariable[Behaviour[string]](v1)

		r := NewJoin[string](Forever, vb)
		changes := countChanges[string](r)
		assert.Equal(t, "Abc", r.Value())

		v1.Set("XyZ")
		assert.Equal(t, "XyZ", r.Value())
		assert.Equal(t, 1, *changes)

		vb.Set(v2)
		assert.Equal(t, "Def", r.Value())
		assert.Equal(t, 2, *changes)

		// the abandoned inner no longer feeds the join
		v1.Set("ignored")
		assert.Equal(t, "Def", r.Value())
		assert.Equal(t, 2, *changes)

		v2.Set("Fed")
		assert.Equal(t, "Fed", r.Value())
		assert.Equal(t, 3, *changes)
	})

	t.Run("switching to an equal-valued inner is no change", func(t *testing.T) {
		v1 := NewVariable("same")
		v2 := NewVariable("same")
		vb := NewVariable[Behaviour[string]](v1)

		r := NewJoin[string](Forever, vb)
		changes := countChanges[string](r)

		vb.Set(v2)
		assert.Equal(t, "same", r.Value())
		assert.Equal(t, 0, *changes)

		// but the join did switch: only the new inner feeds it now
		v1.Set("left")
		assert.Equal(t, "same", r.Value())

		v2.Set("right")
		assert.Equal(t, "right", r.Value())
	})

	t.Run("reads an inner that never engaged in the wave", func(t *testing.T) {
		v1 := NewVariable(1)
		quiet := NewConst(99)

		vb := NewVariable[Behaviour[int]](v1)
		r := NewJoin[int](Forever, vb)

		vb.Set(quiet)
		assert.Equal(t, 99, r.Value())
	})

	t.Run("switching and writing in one wave", func(t *testing.T) {
		v1 := NewVariable("a")
		v2 := NewVariable("b")
		vb := NewVariable[Behaviour[string]](v1)

		r := NewJoin[string](Forever, vb)
		changes := countChanges[string](r)

		Group(func(w *Wave) {
			v2.WavedSet("fresh", w)
			vb.WavedSet(v2, w)
		})

		assert.Equal(t, "fresh", r.Value())
		assert.Equal(t, 1, *changes)
	})
}
