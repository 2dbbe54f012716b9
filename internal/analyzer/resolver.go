package analyzer

import "github.com/uguisu-dev/uguisu/internal/hir"

// resolver is the Lexical Resolver of spec.md §4.1: a stack of frames, each
// mapping an identifier to the NodeID of its declaration. Lookup searches
// innermost-to-outermost, so an inner set_identifier shadows an outer one.
type resolver struct {
	frames []map[string]hir.NodeID
}

func newResolver() *resolver {
	r := &resolver{}
	r.pushFrame() // the root (global) frame
	return r
}

func (r *resolver) pushFrame() {
	r.frames = append(r.frames, make(map[string]hir.NodeID))
}

// popFrame removes the innermost frame. Popping the root frame is a
// programmer error — a bug in the analyzer, not a user-facing failure —
// and is therefore a panic, matching spec.md §4.1's "fatal".
func (r *resolver) popFrame() {
	if len(r.frames) <= 1 {
		panic("resolver: cannot pop the root frame")
	}
	r.frames = r.frames[:len(r.frames)-1]
}

func (r *resolver) setIdentifier(name string, id hir.NodeID) {
	r.frames[len(r.frames)-1][name] = id
}

func (r *resolver) lookupIdentifier(name string) (hir.NodeID, bool) {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if id, ok := r.frames[i][name]; ok {
			return id, true
		}
	}
	return 0, false
}

// atGlobalScope reports whether only the root frame is active, used to
// reject break/return/loop/assignment/expression statements at the top
// level (spec.md §4.2.1).
func (r *resolver) atGlobalScope() bool {
	return len(r.frames) == 1
}
