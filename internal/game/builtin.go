package game

import "github.com/jsredmond/grue/internal/world"

// BuiltinWorld returns the bundled starter world, the opening area around
// the white house, used when no world directory is supplied. It doubles as
// the fixture for integration tests.
func BuiltinWorld() *world.World {
	w := &world.World{
		Start: "west-of-house",
		Rooms: []*world.Room{
			{
				ID:          "west-of-house",
				Name:        "West of House",
				Description: "You are standing in an open field west of a white house, with a boarded front door.",
				Exits:       map[string]world.RoomID{"north": "north-of-house", "south": "south-of-house"},
				Globals:     []world.ObjectID{"house"},
			},
			{
				ID:          "north-of-house",
				Name:        "North of House",
				Description: "You are facing the north side of a white house. There is no door here, and all the windows are boarded up.",
				Exits:       map[string]world.RoomID{"west": "west-of-house", "east": "behind-house"},
				Globals:     []world.ObjectID{"house"},
			},
			{
				ID:          "south-of-house",
				Name:        "South of House",
				Description: "You are facing the south side of a white house. There is no door here, and all the windows are boarded.",
				Exits:       map[string]world.RoomID{"west": "west-of-house", "east": "behind-house"},
				Globals:     []world.ObjectID{"house"},
			},
			{
				ID:          "behind-house",
				Name:        "Behind House",
				Description: "You are behind the white house. In one corner of the house there is a small window which is slightly ajar.",
				Exits: map[string]world.RoomID{
					"north": "north-of-house",
					"south": "south-of-house",
					"west":  "kitchen",
				},
				Globals: []world.ObjectID{"house", "window"},
			},
			{
				ID:          "kitchen",
				Name:        "Kitchen",
				Description: "You are in the kitchen of the white house. A table seems to have been used recently for the preparation of food.",
				Exits: map[string]world.RoomID{
					"east": "behind-house",
					"west": "living-room",
					"up":   "attic",
				},
				Globals: []world.ObjectID{"window"},
			},
			{
				ID:          "attic",
				Name:        "Attic",
				Description: "This is the attic. The only exit is a stairway leading down.",
				Exits:       map[string]world.RoomID{"down": "kitchen"},
				Dark:        true,
			},
			{
				ID:          "living-room",
				Name:        "Living Room",
				Description: "You are in the living room. There is a doorway to the east and a rug lying beside an open trap door.",
				Exits: map[string]world.RoomID{
					"east": "kitchen",
					"down": "cellar",
				},
			},
			{
				ID:          "cellar",
				Name:        "Cellar",
				Description: "You are in a dark and damp cellar with a narrow passageway leading north.",
				Exits:       map[string]world.RoomID{"up": "living-room"},
				Dark:        true,
			},
		},
		Objects: []*world.Object{
			{
				ID:       "mailbox",
				Name:     "small mailbox",
				Synonyms: []string{"mailbox", "box"},
				Adjectives: []string{"small"},
				Flags:    world.NewFlagSet(world.FlagContainer, world.FlagOpenable, world.FlagScenery),
				Location: world.InRoom("west-of-house"),
			},
			{
				ID:       "leaflet",
				Name:     "leaflet",
				Synonyms: []string{"leaflet", "pamphlet"},
				Flags:    world.NewFlagSet(world.FlagTakeable, world.FlagReadable),
				Text:     "WELCOME TO GRUE!\n\nGrue is a game of adventure, danger, and low cunning. No computer should be without one!",
				Location: world.InObject("mailbox"),
			},
			{
				ID:         "mat",
				Name:       "welcome mat",
				Synonyms:   []string{"mat", "doormat"},
				Adjectives: []string{"welcome", "rubber"},
				Flags:      world.NewFlagSet(world.FlagTakeable),
				Location:   world.InRoom("west-of-house"),
			},
			{
				ID:          "house",
				Name:        "white house",
				Synonyms:    []string{"house"},
				Adjectives:  []string{"white", "beautiful", "colonial"},
				Description: "The house is a beautiful colonial house which is painted white. It is clear that the owners must have been extremely wealthy.",
				Flags:       world.NewFlagSet(world.FlagScenery),
				Location:    world.LocRef{},
			},
			{
				ID:          "window",
				Name:        "small window",
				Synonyms:    []string{"window"},
				Adjectives:  []string{"small"},
				Description: "The window is slightly ajar, but not enough to allow entry.",
				Flags:       world.NewFlagSet(world.FlagScenery, world.FlagOpenable, world.FlagDoor),
				Location:    world.LocRef{},
			},
			{
				ID:         "sack",
				Name:       "brown sack",
				Synonyms:   []string{"sack", "bag"},
				Adjectives: []string{"brown", "elongated"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagContainer, world.FlagOpenable),
				Location:   world.InRoom("kitchen"),
			},
			{
				ID:         "garlic",
				Name:       "clove of garlic",
				Synonyms:   []string{"garlic", "clove"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagEdible),
				Location:   world.InObject("sack"),
			},
			{
				ID:         "lunch",
				Name:       "lunch",
				Synonyms:   []string{"lunch", "sandwich", "food"},
				Adjectives: []string{"hot", "pepper"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagEdible),
				Location:   world.InObject("sack"),
			},
			{
				ID:         "bottle",
				Name:       "glass bottle",
				Synonyms:   []string{"bottle", "container"},
				Adjectives: []string{"glass", "clear"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagContainer, world.FlagOpenable, world.FlagOpen),
				Location:   world.InRoom("kitchen"),
			},
			{
				ID:         "water",
				Name:       "quantity of water",
				Synonyms:   []string{"water", "quantity", "liquid"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagDrinkable),
				Location:   world.InObject("bottle"),
			},
			{
				ID:          "lantern",
				Name:        "brass lantern",
				Synonyms:    []string{"lantern", "lamp"},
				Adjectives:  []string{"brass"},
				Description: "The lamp is a shiny brass lantern of the battery-powered variety.",
				Flags:       world.NewFlagSet(world.FlagTakeable, world.FlagLight),
				Location:    world.InRoom("living-room"),
			},
			{
				ID:          "sword",
				Name:        "elvish sword",
				Synonyms:    []string{"sword", "blade", "glamdring"},
				Adjectives:  []string{"elvish", "old", "antique"},
				Description: "It's an elvish sword of great antiquity.",
				Flags:       world.NewFlagSet(world.FlagTakeable, world.FlagWeapon),
				Location:    world.InRoom("living-room"),
			},
			{
				ID:         "rug",
				Name:       "oriental rug",
				Synonyms:   []string{"rug", "carpet"},
				Adjectives: []string{"oriental", "large"},
				Flags:      world.NewFlagSet(world.FlagScenery),
				Location:   world.InRoom("living-room"),
			},
			{
				ID:         "case",
				Name:       "trophy case",
				Synonyms:   []string{"case"},
				Adjectives: []string{"trophy"},
				Flags:      world.NewFlagSet(world.FlagContainer, world.FlagOpenable, world.FlagScenery, world.FlagTrophy),
				Location:   world.InRoom("living-room"),
			},
			{
				ID:         "knife",
				Name:       "nasty knife",
				Synonyms:   []string{"knife", "blade"},
				Adjectives: []string{"nasty"},
				Flags:      world.NewFlagSet(world.FlagTakeable, world.FlagWeapon),
				Location:   world.InRoom("attic"),
			},
			{
				ID:         "rope",
				Name:       "coil of rope",
				Synonyms:   []string{"rope", "coil", "hemp"},
				Adjectives: []string{"large"},
				Flags:      world.NewFlagSet(world.FlagTakeable),
				Location:   world.InRoom("attic"),
			},
			{
				ID:          "painting",
				Name:        "painting",
				Synonyms:    []string{"painting", "art", "canvas", "picture"},
				Adjectives:  []string{"beautiful"},
				Description: "It is a beautiful painting by a neglected genius.",
				Flags:       world.NewFlagSet(world.FlagTakeable),
				Points:      6,
				Location:    world.InRoom("cellar"),
			},
		},
	}
	if err := w.Index(); err != nil {
		// The builtin world is static data; an indexing failure is a
		// programming error.
		panic(err)
	}
	return w
}
