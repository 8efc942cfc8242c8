package game

import "github.com/jsredmond/grue/internal/world"

// WorldView joins the immutable World with the current State into the
// read-only view the parser resolves against. Build one per turn; it must
// not be reused across state mutations.
type WorldView struct {
	World *world.World
	State *State
}

var _ world.View = (*WorldView)(nil)

// Object returns the effective object: the definition with any runtime flag
// and location overrides applied. The returned value is a copy; mutating it
// never touches the world definition.
func (v *WorldView) Object(id world.ObjectID) (*world.Object, bool) {
	base, ok := v.World.Object(id)
	if !ok {
		return nil, false
	}
	eff := *base
	eff.Flags = base.Flags.Clone()
	for f, on := range v.State.FlagOverrides[id] {
		if on {
			eff.Flags[f] = true
		} else {
			delete(eff.Flags, f)
		}
	}
	if loc, moved := v.State.ObjectLocations[id]; moved {
		eff.Location = loc
	}
	return &eff, true
}

// Location returns the effective location of an object.
func (v *WorldView) Location(id world.ObjectID) world.LocRef {
	if loc, moved := v.State.ObjectLocations[id]; moved {
		return loc
	}
	if base, ok := v.World.Object(id); ok {
		return base.Location
	}
	return world.LocRef{}
}

// Inventory returns the carried objects in carry order.
func (v *WorldView) Inventory() []world.ObjectID {
	return append([]world.ObjectID(nil), v.State.Inventory...)
}

// Scope computes the referenceable objects this turn, in a stable order:
// room contents (with the visible contents of open containers and
// surfaces), then inventory, then the room's globals.
func (v *WorldView) Scope() *world.Scope {
	scope := world.NewScope()
	for _, obj := range v.World.Objects {
		if v.Location(obj.ID).Room == v.State.Location {
			v.addWithContents(scope, obj.ID, 0)
		}
	}
	for _, id := range v.State.Inventory {
		v.addWithContents(scope, id, 0)
	}
	if room, ok := v.World.Room(v.State.Location); ok {
		for _, g := range room.Globals {
			scope.Add(g)
		}
	}
	return scope
}

// addWithContents adds an object and, when its contents are visible, its
// contents recursively. The depth guard breaks containment cycles that a
// malformed event log could otherwise introduce.
func (v *WorldView) addWithContents(scope *world.Scope, id world.ObjectID, depth int) {
	if depth > 8 {
		return
	}
	scope.Add(id)
	obj, ok := v.Object(id)
	if !ok {
		return
	}
	open := obj.Flags.Has(world.FlagSurface) ||
		(obj.Flags.Has(world.FlagContainer) && obj.Flags.Has(world.FlagOpen))
	if !open {
		return
	}
	for _, inner := range v.World.Objects {
		if v.Location(inner.ID).Object == id {
			v.addWithContents(scope, inner.ID, depth+1)
		}
	}
}

// IsLit reports whether the player's location has light: either the room is
// naturally lit, or a lit light source is in the room or carried.
func (v *WorldView) IsLit() bool {
	room, ok := v.World.Room(v.State.Location)
	if !ok {
		return false
	}
	if !room.Dark {
		return true
	}
	for _, id := range v.Scope().IDs() {
		if eff, ok := v.Object(id); ok && eff.Flags.Has(world.FlagLit) {
			return true
		}
	}
	return false
}

// Room returns the player's current room definition.
func (v *WorldView) Room() (*world.Room, bool) {
	return v.World.Room(v.State.Location)
}
