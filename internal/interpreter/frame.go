package interpreter

import "github.com/uguisu-dev/uguisu/internal/hir"

// frame is one level of the running stack of spec.md §4.3: a mapping from
// a declaration or FuncParam NodeID to its current Value, chained to an
// outer frame for lookup. Grounded on funvibe-funxy's outer-chained
// Environment (funvibe-funxy/internal/evaluator/environment.go), minus its
// sync.RWMutex — spec.md §5 rules out concurrency for this engine, so
// there is never a second goroutine to guard against.
type frame struct {
	store map[hir.NodeID]Value
	outer *frame
}

func newFrame(outer *frame) *frame {
	return &frame{store: make(map[hir.NodeID]Value), outer: outer}
}

// get searches innermost to outermost, so a function-declaration symbol
// bound in the root frame is visible from every nested call frame.
func (f *frame) get(id hir.NodeID) (Value, bool) {
	for fr := f; fr != nil; fr = fr.outer {
		if v, ok := fr.store[id]; ok {
			return v, true
		}
	}
	return nil, false
}

// set installs a new binding in the current frame, or — if id already has
// a binding somewhere outward (a declaration from an enclosing block being
// reassigned) — updates that existing slot in place. Variable declarations
// and call parameters do not go through set: they bind directly in the
// current frame, since in a recursive call the same id is already bound in
// the caller's frame.
func (f *frame) set(id hir.NodeID, v Value) {
	for fr := f; fr != nil; fr = fr.outer {
		if _, ok := fr.store[id]; ok {
			fr.store[id] = v
			return
		}
	}
	f.store[id] = v
}
