package world

import "fmt"

// World is the full static definition of a game: every room and object,
// plus the starting room. It is loaded once and treated as read-only; all
// runtime mutation is recorded as state overrides by the engine.
type World struct {
	Start   RoomID    `yaml:"start"`
	Rooms   []*Room   `yaml:"rooms"`
	Objects []*Object `yaml:"objects"`

	roomIndex   map[RoomID]*Room
	objectIndex map[ObjectID]*Object
}

// Index builds the lookup maps and validates cross-references. Must be
// called once after the world is constructed or decoded.
func (w *World) Index() error {
	w.roomIndex = make(map[RoomID]*Room, len(w.Rooms))
	for _, r := range w.Rooms {
		if r.ID == "" {
			return fmt.Errorf("room with empty id")
		}
		if _, dup := w.roomIndex[r.ID]; dup {
			return fmt.Errorf("duplicate room id %q", r.ID)
		}
		w.roomIndex[r.ID] = r
	}
	w.objectIndex = make(map[ObjectID]*Object, len(w.Objects))
	for _, o := range w.Objects {
		if o.ID == "" {
			return fmt.Errorf("object with empty id")
		}
		if _, dup := w.objectIndex[o.ID]; dup {
			return fmt.Errorf("duplicate object id %q", o.ID)
		}
		if len(o.Synonyms) == 0 {
			return fmt.Errorf("object %q has no synonyms", o.ID)
		}
		w.objectIndex[o.ID] = o
	}

	if _, ok := w.roomIndex[w.Start]; !ok {
		return fmt.Errorf("start room %q not defined", w.Start)
	}
	for _, r := range w.Rooms {
		for dir, dest := range r.Exits {
			if _, ok := w.roomIndex[dest]; !ok {
				return fmt.Errorf("room %q exit %q leads to undefined room %q", r.ID, dir, dest)
			}
		}
		for _, g := range r.Globals {
			if _, ok := w.objectIndex[g]; !ok {
				return fmt.Errorf("room %q references undefined global %q", r.ID, g)
			}
		}
	}
	for _, o := range w.Objects {
		loc := o.Location
		switch {
		case loc.Room != "":
			if _, ok := w.roomIndex[loc.Room]; !ok {
				return fmt.Errorf("object %q placed in undefined room %q", o.ID, loc.Room)
			}
		case loc.Object != "":
			if _, ok := w.objectIndex[loc.Object]; !ok {
				return fmt.Errorf("object %q placed in undefined object %q", o.ID, loc.Object)
			}
		}
	}
	return nil
}

// Room returns a room definition by id.
func (w *World) Room(id RoomID) (*Room, bool) {
	r, ok := w.roomIndex[id]
	return r, ok
}

// Object returns an object definition by id.
func (w *World) Object(id ObjectID) (*Object, bool) {
	o, ok := w.objectIndex[id]
	return o, ok
}
