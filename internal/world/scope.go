package world

// Scope is the ordered set of object ids the player can reference this turn:
// room contents, inventory, the contents of open containers, and any globals
// the current room declares. It is computed fresh per turn by the game-state
// collaborator and consumed read-only by the resolver; one Scope must stay
// stable for the full resolution of a single command.
type Scope struct {
	ids  []ObjectID
	seen map[ObjectID]bool
}

// NewScope builds a scope from ids in order, dropping duplicates.
func NewScope(ids ...ObjectID) *Scope {
	s := &Scope{seen: make(map[ObjectID]bool, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add appends an id if not already present.
func (s *Scope) Add(id ObjectID) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
}

// Contains reports scope membership.
func (s *Scope) Contains(id ObjectID) bool {
	return s.seen[id]
}

// IDs returns the ids in scope order. The returned slice is a copy.
func (s *Scope) IDs() []ObjectID {
	return append([]ObjectID(nil), s.ids...)
}

// Len returns the number of ids in scope.
func (s *Scope) Len() int {
	return len(s.ids)
}

// View is the read-only window onto the current game state that the parser
// resolves against. The engine supplies an implementation per turn; the
// parser retains nothing between calls.
type View interface {
	// Scope returns the objects referenceable this turn, in order.
	Scope() *Scope
	// IsLit reports whether the player's location has light.
	IsLit() bool
	// Inventory returns the carried objects in carry order.
	Inventory() []ObjectID
	// Object returns the effective object (definition plus any runtime
	// flag or location overrides) by id.
	Object(id ObjectID) (*Object, bool)
}
