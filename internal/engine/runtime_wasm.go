//go:build wasm

package engine

import "sync"

var once sync.Once
var globalRuntime *Runtime

// GetRuntime returns a single process-wide Runtime under wasm, where
// goroutine ids are meaningless (GOOS=js is effectively single-threaded).
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = newRuntime()
	})

	return globalRuntime
}
