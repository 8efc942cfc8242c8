package game

import "github.com/jsredmond/grue/internal/world"

// State is the projection of the event log: everything that can change
// during play, kept apart from the immutable World definition. Object
// locations and flags are overrides; an object without an entry is wherever
// its definition says it is.
type State struct {
	Started         bool                                    `json:"started"`
	Location        world.RoomID                            `json:"location"`
	Inventory       []world.ObjectID                        `json:"inventory"`
	ObjectLocations map[world.ObjectID]world.LocRef         `json:"object_locations"`
	FlagOverrides   map[world.ObjectID]map[world.Flag]bool  `json:"flag_overrides"`
	Deposited       map[world.ObjectID]bool                 `json:"deposited"`
	Moves           int                                     `json:"moves"`
	Score           int                                     `json:"score"`
}

// NewState creates a clean slate.
func NewState() *State {
	return &State{
		ObjectLocations: make(map[world.ObjectID]world.LocRef),
		FlagOverrides:   make(map[world.ObjectID]map[world.Flag]bool),
		Deposited:       make(map[world.ObjectID]bool),
	}
}

// Holding reports whether the player carries the object.
func (s *State) Holding(id world.ObjectID) bool {
	for _, held := range s.Inventory {
		if held == id {
			return true
		}
	}
	return false
}

func (s *State) addToInventory(id world.ObjectID) {
	if s.Holding(id) {
		return
	}
	s.Inventory = append(s.Inventory, id)
}

func (s *State) removeFromInventory(id world.ObjectID) {
	for i, held := range s.Inventory {
		if held == id {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return
		}
	}
}

func (s *State) setFlag(id world.ObjectID, f world.Flag, on bool) {
	overrides, ok := s.FlagOverrides[id]
	if !ok {
		overrides = make(map[world.Flag]bool)
		s.FlagOverrides[id] = overrides
	}
	overrides[f] = on
}

// Projector folds an event sequence into a State.
type Projector struct{}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build replays events over a clean state.
func (p *Projector) Build(events []Event) (*State, error) {
	state := NewState()
	for _, evt := range events {
		if err := evt.Apply(state); err != nil {
			return nil, err
		}
	}
	return state, nil
}
