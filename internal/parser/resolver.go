package parser

import (
	"github.com/jsredmond/grue/internal/lexer"
	"github.com/jsredmond/grue/internal/vocab"
	"github.com/jsredmond/grue/internal/world"
)

// DropOrder is the inventory ordering policy for "drop all" expansion. The
// reference interpreters disagree between revisions, so the direction is an
// explicit policy rather than a hardcoded choice.
type DropOrder string

const (
	// DropOldestFirst expands inventory in carry order.
	DropOldestFirst DropOrder = "fifo"
	// DropNewestFirst expands inventory most-recently-taken first.
	DropNewestFirst DropOrder = "lifo"
)

// nounPhrase is zero or more adjectives followed by exactly one noun, or the
// ALL meta-token.
type nounPhrase struct {
	adjectives []lexer.Token
	noun       lexer.Token
	all        bool
}

// parseNounPhrase validates the shape of a noun-phrase token slice. An
// unknown word is allowed to occupy the noun position so that resolution can
// report it; any other shape violation is a syntax failure.
func parseNounPhrase(tokens []lexer.Token) (nounPhrase, bool) {
	if len(tokens) == 0 {
		return nounPhrase{}, false
	}
	if len(tokens) == 1 && tokens[0].All {
		return nounPhrase{all: true}, true
	}
	var np nounPhrase
	for i, tok := range tokens {
		if tok.All {
			return nounPhrase{}, false
		}
		// The first unknown word claims the noun slot; resolution will
		// surface it as the offending word.
		if tok.Part == vocab.Unknown {
			np.noun = tok
			return np, true
		}
		last := i == len(tokens)-1
		switch tok.Part {
		case vocab.Adjective:
			if last {
				return nounPhrase{}, false
			}
			np.adjectives = append(np.adjectives, tok)
		case vocab.Noun:
			if !last {
				return nounPhrase{}, false
			}
			np.noun = tok
		default:
			return nounPhrase{}, false
		}
	}
	return np, true
}

// resolveOne resolves a non-ALL noun phrase against the current scope.
// Error priority is enforced here exactly: UNKNOWN_WORD beats AMBIGUOUS
// beats OBJECT_NOT_VISIBLE; possession and other preconditions are the
// dispatcher's business and come later still.
func (p *Parser) resolveOne(np nounPhrase, view world.View) (world.ObjectID, *Error) {
	if !np.noun.Known() {
		return "", p.unknown(np.noun.Raw)
	}

	scope := view.Scope()
	var candidates []world.ObjectID
	for _, id := range scope.IDs() {
		obj, ok := view.Object(id)
		if !ok {
			continue
		}
		if obj.HasSynonym(np.noun.Canonical) {
			candidates = append(candidates, id)
		}
	}

	switch len(candidates) {
	case 0:
		return "", notVisible(np.noun.Raw)
	case 1:
		return candidates[0], nil
	}

	// Narrow by adjectives: every supplied adjective must be on the object.
	narrowed := candidates[:0:0]
	for _, id := range candidates {
		obj, _ := view.Object(id)
		all := true
		for _, adj := range np.adjectives {
			if !obj.HasAdjective(adj.Canonical) {
				all = false
				break
			}
		}
		if all {
			narrowed = append(narrowed, id)
		}
	}

	switch len(narrowed) {
	case 0:
		return "", notVisible(np.noun.Raw)
	case 1:
		return narrowed[0], nil
	default:
		return "", ambiguous(np.noun.Raw, narrowed)
	}
}

// expandAll applies the verb's applicability filter to the scope, returning
// the bulk-operation targets in a defined order. An empty result is its own
// terminal outcome, distinct from OBJECT_NOT_VISIBLE.
func (p *Parser) expandAll(filter AllFilter, verb string, view world.View) ([]world.ObjectID, *Error) {
	switch filter {
	case AllTakeable:
		held := heldSet(view)
		var ids []world.ObjectID
		for _, id := range view.Scope().IDs() {
			obj, ok := view.Object(id)
			if !ok || held[id] {
				continue
			}
			if obj.Flags.Has(world.FlagTakeable) && !obj.Flags.Has(world.FlagScenery) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, &Error{Kind: KindNothingHere, Verb: verb}
		}
		return ids, nil

	case AllHeld:
		inv := view.Inventory()
		if len(inv) == 0 {
			return nil, &Error{Kind: KindNothingHere, Verb: verb}
		}
		ids := append([]world.ObjectID(nil), inv...)
		if p.opts.DropOrder == DropNewestFirst {
			for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
		return ids, nil

	default:
		return nil, noSyntax(verb)
	}
}

func heldSet(view world.View) map[world.ObjectID]bool {
	inv := view.Inventory()
	held := make(map[world.ObjectID]bool, len(inv))
	for _, id := range inv {
		held[id] = true
	}
	return held
}
