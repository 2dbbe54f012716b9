package hir

// Program is the result of analysis: the populated arena/symbol table plus
// the ordered list of top-level HIR entries (the translated top-level
// statements, ending in the synthetic call to `main`). It is read-only
// once analysis finishes (spec.md §3 "Lifecycles").
type Program struct {
	Store   *Store
	Entries []NodeID
}

// symbolEntry is the per-node side-table record: resolved type, source
// position (absent for synthetic builtins), and — for Declarations — a
// lazily-installed link to the defining Function or Variable node.
type symbolEntry struct {
	ty   *Type
	pos  *int // byte offset; nil for synthetic (builtin) declarations
	body *NodeID
}

// Store is the arena plus its symbol table. Every NodeID minted by Alloc
// gets a (possibly empty) symbolEntry in the same step, so the invariant
// "every NodeId in the arena has a corresponding symbol-table record"
// holds by construction rather than by convention.
type Store struct {
	nodes   []Node
	symbols []symbolEntry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Alloc inserts n into the arena and returns its new NodeID.
func (s *Store) Alloc(n Node) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, n)
	s.symbols = append(s.symbols, symbolEntry{})
	return id
}

// Node returns the arena entry for id.
func (s *Store) Node(id NodeID) Node {
	return s.nodes[id]
}

// Len returns the number of nodes allocated so far.
func (s *Store) Len() int {
	return len(s.nodes)
}

// SetType records the resolved type for id.
func (s *Store) SetType(id NodeID, ty Type) {
	s.symbols[id].ty = &ty
}

// Type returns the resolved type for id, if the analyzer has set one.
func (s *Store) Type(id NodeID) (Type, bool) {
	e := s.symbols[id]
	if e.ty == nil {
		return 0, false
	}
	return *e.ty, true
}

// SetPos records the byte offset of id's defining token. Synthetic
// builtins never call this, so Pos correctly reports "no position" for
// them.
func (s *Store) SetPos(id NodeID, offset int) {
	s.symbols[id].pos = &offset
}

// Pos returns the byte offset recorded for id, if any.
func (s *Store) Pos(id NodeID) (int, bool) {
	e := s.symbols[id]
	if e.pos == nil {
		return 0, false
	}
	return *e.pos, true
}

// SetBody links a Declaration id to its defining Function or Variable
// node. Installed after the Declaration itself is registered, which is
// what allows forward references and late variable definitions.
func (s *Store) SetBody(id, body NodeID) {
	s.symbols[id].body = &body
}

// Body returns the linked body node for a Declaration id, if installed.
func (s *Store) Body(id NodeID) (NodeID, bool) {
	e := s.symbols[id]
	if e.body == nil {
		return 0, false
	}
	return *e.body, true
}
