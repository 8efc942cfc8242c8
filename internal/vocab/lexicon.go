package vocab

// DefaultLexicon returns the built-in verb, preposition, direction, and
// article entries shared by every game. Nouns and adjectives are derived from
// the world's object definitions and merged in by the session at startup.
func DefaultLexicon() []Entry {
	return []Entry{
		// Verbs. Synonyms collapse onto one canonical id so the syntax table
		// only ever keys on canonical verbs.
		{Surface: "take", Part: Verb, Canonical: "take"},
		{Surface: "get", Part: Verb, Canonical: "take"},
		{Surface: "grab", Part: Verb, Canonical: "take"},
		{Surface: "carry", Part: Verb, Canonical: "take"},
		{Surface: "drop", Part: Verb, Canonical: "drop"},
		{Surface: "discard", Part: Verb, Canonical: "drop"},
		{Surface: "put", Part: Verb, Canonical: "put"},
		{Surface: "place", Part: Verb, Canonical: "put"},
		{Surface: "insert", Part: Verb, Canonical: "put"},
		{Surface: "open", Part: Verb, Canonical: "open"},
		{Surface: "close", Part: Verb, Canonical: "close"},
		{Surface: "shut", Part: Verb, Canonical: "close"},
		{Surface: "look", Part: Verb, Canonical: "look"},
		{Surface: "l", Part: Verb, Canonical: "look"},
		{Surface: "examine", Part: Verb, Canonical: "examine"},
		{Surface: "x", Part: Verb, Canonical: "examine"},
		{Surface: "inspect", Part: Verb, Canonical: "examine"},
		{Surface: "read", Part: Verb, Canonical: "read"},
		{Surface: "go", Part: Verb, Canonical: "go"},
		{Surface: "walk", Part: Verb, Canonical: "go"},
		{Surface: "run", Part: Verb, Canonical: "go"},
		{Surface: "enter", Part: Verb, Canonical: "go"},
		{Surface: "inventory", Part: Verb, Canonical: "inventory"},
		{Surface: "i", Part: Verb, Canonical: "inventory"},
		{Surface: "inv", Part: Verb, Canonical: "inventory"},
		{Surface: "wait", Part: Verb, Canonical: "wait"},
		{Surface: "z", Part: Verb, Canonical: "wait"},
		{Surface: "light", Part: Verb, Canonical: "light"},
		{Surface: "extinguish", Part: Verb, Canonical: "extinguish"},
		{Surface: "douse", Part: Verb, Canonical: "extinguish"},
		{Surface: "turn", Part: Verb, Canonical: "turn"},
		{Surface: "attack", Part: Verb, Canonical: "attack"},
		{Surface: "kill", Part: Verb, Canonical: "attack"},
		{Surface: "fight", Part: Verb, Canonical: "attack"},
		{Surface: "move", Part: Verb, Canonical: "move"},
		{Surface: "push", Part: Verb, Canonical: "move"},
		{Surface: "eat", Part: Verb, Canonical: "eat"},
		{Surface: "drink", Part: Verb, Canonical: "drink"},
		{Surface: "quit", Part: Verb, Canonical: "quit"},
		{Surface: "q", Part: Verb, Canonical: "quit"},
		{Surface: "score", Part: Verb, Canonical: "score"},

		// Prepositions.
		{Surface: "in", Part: Preposition, Canonical: "in"},
		{Surface: "into", Part: Preposition, Canonical: "in"},
		{Surface: "inside", Part: Preposition, Canonical: "in"},
		{Surface: "on", Part: Preposition, Canonical: "on"},
		{Surface: "onto", Part: Preposition, Canonical: "on"},
		{Surface: "at", Part: Preposition, Canonical: "at"},
		{Surface: "with", Part: Preposition, Canonical: "with"},
		{Surface: "under", Part: Preposition, Canonical: "under"},
		{Surface: "behind", Part: Preposition, Canonical: "behind"},
		{Surface: "to", Part: Preposition, Canonical: "to"},
		{Surface: "from", Part: Preposition, Canonical: "from"},
		{Surface: "off", Part: Preposition, Canonical: "off"},

		// Directions.
		{Surface: "north", Part: Direction, Canonical: "north"},
		{Surface: "n", Part: Direction, Canonical: "north"},
		{Surface: "south", Part: Direction, Canonical: "south"},
		{Surface: "s", Part: Direction, Canonical: "south"},
		{Surface: "east", Part: Direction, Canonical: "east"},
		{Surface: "e", Part: Direction, Canonical: "east"},
		{Surface: "west", Part: Direction, Canonical: "west"},
		{Surface: "w", Part: Direction, Canonical: "west"},
		{Surface: "northeast", Part: Direction, Canonical: "northeast"},
		{Surface: "ne", Part: Direction, Canonical: "northeast"},
		{Surface: "northwest", Part: Direction, Canonical: "northwest"},
		{Surface: "nw", Part: Direction, Canonical: "northwest"},
		{Surface: "southeast", Part: Direction, Canonical: "southeast"},
		{Surface: "se", Part: Direction, Canonical: "southeast"},
		{Surface: "southwest", Part: Direction, Canonical: "southwest"},
		{Surface: "sw", Part: Direction, Canonical: "southwest"},
		{Surface: "up", Part: Direction, Canonical: "up"},
		{Surface: "u", Part: Direction, Canonical: "up"},
		{Surface: "down", Part: Direction, Canonical: "down"},
		{Surface: "d", Part: Direction, Canonical: "down"},

		// Articles are recognized and then skipped by the lexer.
		{Surface: "the", Part: Article, Canonical: "the"},
		{Surface: "a", Part: Article, Canonical: "a"},
		{Surface: "an", Part: Article, Canonical: "an"},
	}
}
