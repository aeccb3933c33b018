//go:build !wasm

package engine

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map // goroutine id (int64) -> *Runtime

// GetRuntime returns the Runtime for the calling goroutine, creating one on
// first use. Keying by goroutine id keeps each goroutine's wave-in-progress
// state independent, so two goroutines can each run their own waves without
// tripping the one-active-wave rule against each other.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := newRuntime()
	runtimes.Store(gid, r)
	return r
}
