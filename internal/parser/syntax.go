package parser

import (
	"github.com/jsredmond/grue/internal/lexer"
	"github.com/jsredmond/grue/internal/vocab"
)

// AllFilter names the applicability filter used when a noun slot is the ALL
// meta-token: which objects in scope a bulk verb operates on.
type AllFilter string

const (
	// AllNone marks a verb that does not accept "all".
	AllNone AllFilter = ""
	// AllTakeable expands to takeable, non-scenery objects not yet held.
	AllTakeable AllFilter = "takeable"
	// AllHeld expands to the player's inventory.
	AllHeld AllFilter = "held"
)

// Pattern is one registered sentence shape for a verb:
//
//	VERB [direct-prep] [DIRECT] [indirect-prep] [INDIRECT]
//
// A verb may register several patterns ("put X", "put X in Y", "put X on Y");
// the matcher picks the one whose slot shape matches the tokenized sentence
// exactly. Patterns are static data, loadable from syntax.yaml.
type Pattern struct {
	Verb         string    `yaml:"verb"`
	Action       string    `yaml:"action"`
	DirectPrep   string    `yaml:"direct_prep,omitempty"`
	Direct       bool      `yaml:"direct,omitempty"`
	IndirectPrep string    `yaml:"indirect_prep,omitempty"`
	Indirect     bool      `yaml:"indirect,omitempty"`
	Direction    bool      `yaml:"direction,omitempty"`
	Held         bool      `yaml:"held,omitempty"`          // direct object must already be carried
	IndirectHeld bool      `yaml:"indirect_held,omitempty"` // indirect object must already be carried
	DarkOK       bool      `yaml:"dark,omitempty"`          // verb proceeds without light
	All          AllFilter `yaml:"all,omitempty"`
}

func (p Pattern) filledSlots() int {
	n := 0
	if p.Direct {
		n++
	}
	if p.Indirect {
		n++
	}
	if p.Direction {
		n++
	}
	return n
}

// SyntaxTable holds every registered pattern, keyed by canonical verb.
// Immutable after construction.
type SyntaxTable struct {
	patterns map[string][]Pattern
}

// NewSyntaxTable indexes patterns by verb, preserving registration order.
func NewSyntaxTable(patterns []Pattern) *SyntaxTable {
	t := &SyntaxTable{patterns: make(map[string][]Pattern)}
	for _, p := range patterns {
		t.patterns[p.Verb] = append(t.patterns[p.Verb], p)
	}
	return t
}

// Patterns returns the registered patterns for a canonical verb.
func (t *SyntaxTable) Patterns(verb string) []Pattern {
	return t.patterns[verb]
}

// Match is a successful syntax match: the selected pattern plus the raw
// noun-phrase tokens for each filled slot, ready for object resolution.
type Match struct {
	Pattern   Pattern
	Verb      string // verb as typed
	Direct    []lexer.Token
	Indirect  []lexer.Token
	Direction string
}

// Match segments the token sequence into VERB [prep NP] [prep NP] and
// selects the verb pattern whose slot shape matches exactly, preferring the
// pattern with the most filled slots. A bare direction ("north") matches as
// an implicit "go". When no verb-class token is present, the raw first word
// is reported for error rendering; that is distinct from an unknown word,
// since the word may be fine vocabulary that simply isn't a verb.
func (t *SyntaxTable) Match(tokens []lexer.Token) (Match, *Error) {
	if len(tokens) == 0 {
		return Match{}, &Error{Kind: KindEmptyInput}
	}

	// Bare direction: "north" means "go north".
	if tokens[0].Part == vocab.Direction && len(tokens) == 1 {
		if p, ok := t.directionPattern("go"); ok {
			return Match{Pattern: p, Verb: tokens[0].Raw, Direction: tokens[0].Canonical}, nil
		}
	}

	verbIdx := -1
	for i, tok := range tokens {
		if tok.Part == vocab.Verb {
			verbIdx = i
			break
		}
	}
	if verbIdx == -1 {
		return Match{}, &Error{Kind: KindNoSyntaxMatch, Word: tokens[0].Raw}
	}
	verbTok := tokens[verbIdx]
	rest := tokens[verbIdx+1:]

	dPrep, np1, iPrep, np2, ok := segment(rest)
	if !ok {
		return Match{}, noSyntax(verbTok.Canonical)
	}

	isDirection := len(np1) == 1 && np1[0].Part == vocab.Direction &&
		dPrep == "" && iPrep == "" && len(np2) == 0

	var best Pattern
	found := false
	for _, p := range t.patterns[verbTok.Canonical] {
		if !shapeMatches(p, dPrep, np1, iPrep, np2, isDirection) {
			continue
		}
		if !found || p.filledSlots() > best.filledSlots() {
			best = p
			found = true
		}
	}
	if !found {
		return Match{}, noSyntax(verbTok.Canonical)
	}

	m := Match{Pattern: best, Verb: verbTok.Raw}
	if best.Direction {
		m.Direction = np1[0].Canonical
	} else {
		m.Direct = np1
		m.Indirect = np2
	}
	return m, nil
}

// segment splits post-verb tokens into [prep] NP [prep] NP. A third
// preposition or a second trailing phrase is more structure than any
// registered pattern can hold, so it fails the segmentation.
func segment(rest []lexer.Token) (dPrep string, np1 []lexer.Token, iPrep string, np2 []lexer.Token, ok bool) {
	i := 0
	if i < len(rest) && rest[i].Part == vocab.Preposition {
		dPrep = rest[i].Canonical
		i++
	}
	for i < len(rest) && rest[i].Part != vocab.Preposition {
		np1 = append(np1, rest[i])
		i++
	}
	if i < len(rest) {
		iPrep = rest[i].Canonical
		i++
	}
	for i < len(rest) && rest[i].Part != vocab.Preposition {
		np2 = append(np2, rest[i])
		i++
	}
	if i < len(rest) {
		return "", nil, "", nil, false
	}
	return dPrep, np1, iPrep, np2, true
}

// shapeMatches reports whether a pattern's slot shape matches the segmented
// sentence exactly, with no partial matches. When a verb has same-shape patterns
// that differ only in preposition, the preposition token itself decides.
func shapeMatches(p Pattern, dPrep string, np1 []lexer.Token, iPrep string, np2 []lexer.Token, isDirection bool) bool {
	if p.Direction {
		return isDirection
	}
	if isDirection {
		return false
	}
	if p.DirectPrep != dPrep {
		return false
	}
	if p.Direct != (len(np1) > 0) {
		return false
	}
	if p.IndirectPrep != iPrep {
		return false
	}
	if p.Indirect != (len(np2) > 0) {
		return false
	}
	return true
}

func (t *SyntaxTable) directionPattern(verb string) (Pattern, bool) {
	for _, p := range t.patterns[verb] {
		if p.Direction {
			return p, true
		}
	}
	return Pattern{}, false
}

// DefaultSyntax returns the built-in verb patterns for the standard verb
// set. World data may extend this table via syntax.yaml.
func DefaultSyntax() []Pattern {
	return []Pattern{
		{Verb: "take", Action: "take", Direct: true, All: AllTakeable},
		{Verb: "drop", Action: "drop", Direct: true, Held: true, All: AllHeld},
		{Verb: "put", Action: "drop", Direct: true, Held: true, All: AllHeld},
		{Verb: "put", Action: "put-in", Direct: true, Held: true, IndirectPrep: "in", Indirect: true, All: AllHeld},
		{Verb: "put", Action: "put-on", Direct: true, Held: true, IndirectPrep: "on", Indirect: true, All: AllHeld},
		{Verb: "open", Action: "open", Direct: true},
		{Verb: "close", Action: "close", Direct: true},
		{Verb: "look", Action: "look", DarkOK: true},
		{Verb: "look", Action: "examine", DirectPrep: "at", Direct: true},
		{Verb: "examine", Action: "examine", Direct: true},
		{Verb: "read", Action: "read", Direct: true},
		{Verb: "go", Action: "go", Direction: true, DarkOK: true},
		{Verb: "inventory", Action: "inventory", DarkOK: true},
		{Verb: "wait", Action: "wait", DarkOK: true},
		{Verb: "light", Action: "light", Direct: true, DarkOK: true},
		{Verb: "turn", Action: "light", DirectPrep: "on", Direct: true, DarkOK: true},
		{Verb: "turn", Action: "extinguish", DirectPrep: "off", Direct: true, DarkOK: true},
		// "turn lamp on": trailing preposition, no indirect object.
		{Verb: "turn", Action: "light", Direct: true, IndirectPrep: "on", DarkOK: true},
		{Verb: "turn", Action: "extinguish", Direct: true, IndirectPrep: "off", DarkOK: true},
		{Verb: "extinguish", Action: "extinguish", Direct: true, DarkOK: true},
		{Verb: "attack", Action: "attack", Direct: true, IndirectPrep: "with", Indirect: true, IndirectHeld: true},
		{Verb: "move", Action: "move", Direct: true},
		{Verb: "eat", Action: "eat", Direct: true, Held: true},
		{Verb: "drink", Action: "drink", Direct: true},
		{Verb: "score", Action: "score", DarkOK: true},
		{Verb: "quit", Action: "quit", DarkOK: true},
	}
}
