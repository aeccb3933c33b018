package engine

import "github.com/davecgh/go-spew/spew"

// DumpGraph renders p's correlated and downstream multisets for debugging a
// hung or non-converging graph. spew.Sdump is cycle-safe, which matters here
// since correlation links are routinely mutual (a behaviour correlates to
// its source's change event, and Flatten additionally swaps correlation at
// runtime).
func DumpGraph(p *Participant) string {
	snapshot := struct {
		State       State
		Correlated  map[*Participant]int
		Downstream  map[*Participant]int
		PendingDeps int
	}{
		State:       p.state,
		Correlated:  p.correlated,
		Downstream:  p.downstream,
		PendingDeps: p.pendingDeps,
	}

	return spew.Sdump(snapshot)
}
