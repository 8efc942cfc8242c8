// Package parser implements the natural-language command pipeline: lexing
// against the vocabulary table, syntax matching against per-verb patterns,
// object resolution against the current scope, and universal precondition
// checks. One call to Parse produces exactly one Command or exactly one
// *Error, never both and never neither. The parser holds no per-call state, so
// a single Parser is safe for concurrent parses given independent views.
package parser

import (
	"errors"

	"github.com/jsredmond/grue/internal/lexer"
	"github.com/jsredmond/grue/internal/vocab"
	"github.com/jsredmond/grue/internal/world"
)

// Options are the explicit policy knobs of the pipeline.
type Options struct {
	// DropOrder picks the "drop all" expansion direction.
	DropOrder DropOrder
	// Suggestions attaches a near-miss vocabulary word to unknown-word
	// errors.
	Suggestions bool
}

// Parser binds the immutable vocabulary and syntax tables. Construct once,
// share freely.
type Parser struct {
	vocab  *vocab.Table
	syntax *SyntaxTable
	opts   Options
}

// New creates a parser over the given tables.
func New(v *vocab.Table, s *SyntaxTable, opts Options) *Parser {
	if opts.DropOrder == "" {
		opts.DropOrder = DropOldestFirst
	}
	return &Parser{vocab: v, syntax: s, opts: opts}
}

// Vocabulary exposes the vocabulary table, for presentation features such as
// input autocompletion.
func (p *Parser) Vocabulary() *vocab.Table {
	return p.vocab
}

// Command is a fully resolved player command, constructed fresh each turn
// and handed to the action handler. Direct holds one object normally, or the
// whole expansion when All is set.
type Command struct {
	Action    string
	Verb      string // as typed
	Direct    []world.ObjectID
	All       bool
	Indirect  world.ObjectID
	Direction string
}

// Parse is the single entry point: raw input plus the turn's state view in,
// one Command or one *Error out.
//
// Check order: lexing (empty/malformed), unknown words left to right, syntax
// match, darkness gate, direct-object resolution, indirect-object
// resolution, possession preconditions. Unknown words outrank everything so
// a typo is always reported as a typo, no matter what else is wrong with the
// sentence.
func (p *Parser) Parse(input string, view world.View) (Command, error) {
	tokens, lexErr := lexer.Tokenize(input, p.vocab)
	if lexErr != nil {
		if errors.Is(lexErr, lexer.ErrMalformedInput) {
			return Command{}, &Error{Kind: KindMalformedInput}
		}
		return Command{}, &Error{Kind: KindEmptyInput}
	}

	for _, tok := range tokens {
		if !tok.All && !tok.Known() {
			return Command{}, p.unknown(tok.Raw)
		}
	}

	m, matchErr := p.syntax.Match(tokens)
	if matchErr != nil {
		return Command{}, matchErr
	}

	if !m.Pattern.DarkOK && !view.IsLit() {
		return Command{}, &Error{Kind: KindDarkRoom, Verb: m.Pattern.Verb}
	}

	cmd := Command{Action: m.Pattern.Action, Verb: m.Verb, Direction: m.Direction}

	var directNoun string
	if m.Pattern.Direct {
		np, ok := parseNounPhrase(m.Direct)
		if !ok {
			return Command{}, noSyntax(m.Pattern.Verb)
		}
		if np.all {
			ids, allErr := p.expandAll(m.Pattern.All, m.Pattern.Verb, view)
			if allErr != nil {
				return Command{}, allErr
			}
			cmd.Direct = ids
			cmd.All = true
		} else {
			id, resErr := p.resolveOne(np, view)
			if resErr != nil {
				return Command{}, resErr
			}
			cmd.Direct = []world.ObjectID{id}
			directNoun = np.noun.Raw
		}
	}

	var indirectNoun string
	if m.Pattern.Indirect {
		np, ok := parseNounPhrase(m.Indirect)
		if !ok || np.all {
			return Command{}, noSyntax(m.Pattern.Verb)
		}
		id, resErr := p.resolveOne(np, view)
		if resErr != nil {
			return Command{}, resErr
		}
		cmd.Indirect = id
		indirectNoun = np.noun.Raw
	}

	// Possession preconditions. ALL expansions for held-object verbs are
	// already drawn from the inventory, so only single resolutions need the
	// check.
	if m.Pattern.Held && !cmd.All && len(cmd.Direct) == 1 {
		if !heldSet(view)[cmd.Direct[0]] {
			return Command{}, &Error{Kind: KindNotHeld, Word: directNoun}
		}
	}
	if m.Pattern.IndirectHeld && cmd.Indirect != "" {
		if !heldSet(view)[cmd.Indirect] {
			return Command{}, &Error{Kind: KindNotHeld, Word: indirectNoun}
		}
	}

	return cmd, nil
}

func (p *Parser) unknown(raw string) *Error {
	suggestion := ""
	if p.opts.Suggestions {
		suggestion = p.vocab.Suggest(raw)
	}
	return unknownWord(raw, suggestion)
}
