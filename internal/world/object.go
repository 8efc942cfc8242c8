// Package world defines the static object and room model the parser and
// engine share: typed object flags, locations, rooms, and the per-turn Scope
// of referenceable objects. The parser consumes this model read-only through
// the View interface; all mutation lives in the engine's state projection.
package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ObjectID identifies a game object.
type ObjectID string

// RoomID identifies a room.
type RoomID string

// Flag is one capability or state bit of an object. The set of valid flags
// is closed; world files are validated against it at load time.
type Flag string

const (
	FlagTakeable  Flag = "takeable"
	FlagScenery   Flag = "scenery"
	FlagContainer Flag = "container"
	FlagSurface   Flag = "surface"
	FlagOpenable  Flag = "openable"
	FlagOpen      Flag = "open"
	FlagLight     Flag = "light" // can serve as a light source
	FlagLit       Flag = "lit"   // currently giving light
	FlagReadable  Flag = "readable"
	FlagDoor      Flag = "door"
	FlagWeapon    Flag = "weapon"
	FlagEdible    Flag = "edible"
	FlagDrinkable Flag = "drinkable"
	FlagTrophy    Flag = "trophy" // container that scores deposited treasures
)

var validFlags = map[Flag]bool{
	FlagTakeable: true, FlagScenery: true, FlagContainer: true,
	FlagSurface: true, FlagOpenable: true, FlagOpen: true,
	FlagLight: true, FlagLit: true, FlagReadable: true,
	FlagDoor: true, FlagWeapon: true, FlagEdible: true, FlagDrinkable: true,
	FlagTrophy: true,
}

// FlagSet is an object's capability set. It serializes as a flat list of
// flag names in YAML world files.
type FlagSet map[Flag]bool

// NewFlagSet builds a set from the given flags.
func NewFlagSet(flags ...Flag) FlagSet {
	fs := make(FlagSet, len(flags))
	for _, f := range flags {
		fs[f] = true
	}
	return fs
}

// Has reports whether the flag is present.
func (fs FlagSet) Has(f Flag) bool {
	return fs[f]
}

// Clone returns an independent copy.
func (fs FlagSet) Clone() FlagSet {
	out := make(FlagSet, len(fs))
	for f, v := range fs {
		if v {
			out[f] = true
		}
	}
	return out
}

// UnmarshalYAML decodes a sequence of flag names, rejecting unknown flags so
// typos in world files fail at load time rather than at play time.
func (fs *FlagSet) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}
	out := make(FlagSet, len(names))
	for _, name := range names {
		f := Flag(name)
		if !validFlags[f] {
			return fmt.Errorf("unknown object flag %q", name)
		}
		out[f] = true
	}
	*fs = out
	return nil
}

// MarshalYAML encodes the set as a sorted-insertion list of names.
func (fs FlagSet) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, len(fs))
	for f := range fs {
		names = append(names, string(f))
	}
	return names, nil
}

// LocRef locates an object: in a room, inside another object, or carried by
// the player. Exactly one field is set; the zero value means "nowhere"
// (removed from play).
type LocRef struct {
	Room   RoomID   `yaml:"room,omitempty" json:"room,omitempty"`
	Object ObjectID `yaml:"object,omitempty" json:"object,omitempty"`
	Player bool     `yaml:"player,omitempty" json:"player,omitempty"`
}

// InRoom builds a room location.
func InRoom(id RoomID) LocRef { return LocRef{Room: id} }

// InObject builds a container location.
func InObject(id ObjectID) LocRef { return LocRef{Object: id} }

// Held builds a player-inventory location.
func Held() LocRef { return LocRef{Player: true} }

// IsNowhere reports whether the reference points at nothing.
func (l LocRef) IsNowhere() bool {
	return l.Room == "" && l.Object == "" && !l.Player
}

// Object is a game object definition. The parser reads synonyms, adjectives,
// flags, and location; it never mutates an Object.
type Object struct {
	ID          ObjectID `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Text        string   `yaml:"text,omitempty"` // shown by "read"
	Synonyms    []string `yaml:"synonyms"`
	Adjectives  []string `yaml:"adjectives,omitempty"`
	Flags       FlagSet  `yaml:"flags,omitempty"`
	Location    LocRef   `yaml:"location"`
	Points      int      `yaml:"points,omitempty"` // treasure value when deposited
}

// HasSynonym reports whether word is one of the object's nouns.
func (o *Object) HasSynonym(word string) bool {
	for _, s := range o.Synonyms {
		if s == word {
			return true
		}
	}
	return false
}

// HasAdjective reports whether word is one of the object's adjectives.
func (o *Object) HasAdjective(word string) bool {
	for _, a := range o.Adjectives {
		if a == word {
			return true
		}
	}
	return false
}

// Room is a location definition.
type Room struct {
	ID          RoomID            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       map[string]RoomID `yaml:"exits,omitempty"`
	Globals     []ObjectID        `yaml:"globals,omitempty"` // scenery referenceable here
	Dark        bool              `yaml:"dark,omitempty"`
}
