// Package game is the engine the parser drives: an event-sourced game state,
// the per-turn scope/visibility view the resolver consumes, the action
// handlers that execute parsed commands, and the presentation layer that
// renders parser errors into player-facing text.
package game

import (
	"fmt"

	"github.com/jsredmond/grue/internal/world"
)

// EventType tags events for the append-only store.
type EventType string

const (
	EventGameStarted       EventType = "GameStarted"
	EventPlayerMoved       EventType = "PlayerMoved"
	EventObjectTaken       EventType = "ObjectTaken"
	EventObjectDropped     EventType = "ObjectDropped"
	EventObjectPut         EventType = "ObjectPut"
	EventObjectRemoved     EventType = "ObjectRemoved"
	EventObjectOpened      EventType = "ObjectOpened"
	EventObjectClosed      EventType = "ObjectClosed"
	EventLightSwitched     EventType = "LightSwitched"
	EventTurnPassed        EventType = "TurnPassed"
	EventTreasureDeposited EventType = "TreasureDeposited"
)

// Event is one recorded state transition. The game state is a pure fold of
// the event sequence, which is what makes save files an event log replay.
type Event interface {
	Type() EventType
	Apply(s *State) error
}

// GameStartedEvent places the player in the starting room.
type GameStartedEvent struct {
	Room world.RoomID `json:"room"`
}

func (e *GameStartedEvent) Type() EventType { return EventGameStarted }
func (e *GameStartedEvent) Apply(s *State) error {
	s.Started = true
	s.Location = e.Room
	return nil
}

// PlayerMovedEvent records a room transition.
type PlayerMovedEvent struct {
	To world.RoomID `json:"to"`
}

func (e *PlayerMovedEvent) Type() EventType { return EventPlayerMoved }
func (e *PlayerMovedEvent) Apply(s *State) error {
	s.Location = e.To
	s.Moves++
	return nil
}

// ObjectTakenEvent moves an object into the player's inventory.
type ObjectTakenEvent struct {
	Object world.ObjectID `json:"object"`
}

func (e *ObjectTakenEvent) Type() EventType { return EventObjectTaken }
func (e *ObjectTakenEvent) Apply(s *State) error {
	s.ObjectLocations[e.Object] = world.Held()
	s.addToInventory(e.Object)
	s.Moves++
	return nil
}

// ObjectDroppedEvent moves a held object onto the floor of a room.
type ObjectDroppedEvent struct {
	Object world.ObjectID `json:"object"`
	Room   world.RoomID   `json:"room"`
}

func (e *ObjectDroppedEvent) Type() EventType { return EventObjectDropped }
func (e *ObjectDroppedEvent) Apply(s *State) error {
	s.ObjectLocations[e.Object] = world.InRoom(e.Room)
	s.removeFromInventory(e.Object)
	s.Moves++
	return nil
}

// ObjectPutEvent moves a held object into (or onto) another object.
type ObjectPutEvent struct {
	Object    world.ObjectID `json:"object"`
	Container world.ObjectID `json:"container"`
}

func (e *ObjectPutEvent) Type() EventType { return EventObjectPut }
func (e *ObjectPutEvent) Apply(s *State) error {
	s.ObjectLocations[e.Object] = world.InObject(e.Container)
	s.removeFromInventory(e.Object)
	s.Moves++
	return nil
}

// ObjectRemovedEvent takes an object out of play (eaten, drunk, destroyed).
type ObjectRemovedEvent struct {
	Object world.ObjectID `json:"object"`
}

func (e *ObjectRemovedEvent) Type() EventType { return EventObjectRemoved }
func (e *ObjectRemovedEvent) Apply(s *State) error {
	s.ObjectLocations[e.Object] = world.LocRef{}
	s.removeFromInventory(e.Object)
	s.Moves++
	return nil
}

// ObjectOpenedEvent sets the open flag override.
type ObjectOpenedEvent struct {
	Object world.ObjectID `json:"object"`
}

func (e *ObjectOpenedEvent) Type() EventType { return EventObjectOpened }
func (e *ObjectOpenedEvent) Apply(s *State) error {
	s.setFlag(e.Object, world.FlagOpen, true)
	s.Moves++
	return nil
}

// ObjectClosedEvent clears the open flag override.
type ObjectClosedEvent struct {
	Object world.ObjectID `json:"object"`
}

func (e *ObjectClosedEvent) Type() EventType { return EventObjectClosed }
func (e *ObjectClosedEvent) Apply(s *State) error {
	s.setFlag(e.Object, world.FlagOpen, false)
	s.Moves++
	return nil
}

// LightSwitchedEvent toggles a light source.
type LightSwitchedEvent struct {
	Object world.ObjectID `json:"object"`
	On     bool           `json:"on"`
}

func (e *LightSwitchedEvent) Type() EventType { return EventLightSwitched }
func (e *LightSwitchedEvent) Apply(s *State) error {
	s.setFlag(e.Object, world.FlagLit, e.On)
	s.Moves++
	return nil
}

// TurnPassedEvent records a turn in which nothing else happened.
type TurnPassedEvent struct{}

func (e *TurnPassedEvent) Type() EventType { return EventTurnPassed }
func (e *TurnPassedEvent) Apply(s *State) error {
	s.Moves++
	return nil
}

// TreasureDepositedEvent awards points for placing a treasure in a trophy
// container. Each treasure scores once.
type TreasureDepositedEvent struct {
	Object world.ObjectID `json:"object"`
	Points int            `json:"points"`
}

func (e *TreasureDepositedEvent) Type() EventType { return EventTreasureDeposited }
func (e *TreasureDepositedEvent) Apply(s *State) error {
	if s.Deposited[e.Object] {
		return fmt.Errorf("treasure %q already deposited", e.Object)
	}
	s.Deposited[e.Object] = true
	s.Score += e.Points
	return nil
}
