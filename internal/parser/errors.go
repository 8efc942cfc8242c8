package parser

import (
	"fmt"
	"strings"

	"github.com/jsredmond/grue/internal/world"
)

// ErrorKind classifies a parse failure. Every parse attempt terminates in
// exactly one Command or exactly one *Error; errors carry structured context
// (word, verb, candidates) and no player-facing text; rendering the message
// belongs to the presentation layer.
type ErrorKind string

const (
	KindEmptyInput       ErrorKind = "empty-input"
	KindMalformedInput   ErrorKind = "malformed-input"
	KindUnknownWord      ErrorKind = "unknown-word"
	KindNoSyntaxMatch    ErrorKind = "no-syntax-match"
	KindObjectNotVisible ErrorKind = "object-not-visible"
	KindAmbiguous        ErrorKind = "ambiguous"
	KindNotHeld          ErrorKind = "not-held"
	KindDarkRoom         ErrorKind = "dark-room"
	KindNothingHere      ErrorKind = "nothing-here"
)

// Error is the tagged union of parse failures.
type Error struct {
	Kind ErrorKind

	// Word is the offending word for UnknownWord, ObjectNotVisible,
	// Ambiguous, and NotHeld. For NoSyntaxMatch it holds the raw first word
	// when the sentence contained no verb at all.
	Word string

	// Verb is the canonical verb for NoSyntaxMatch and NothingHere. Empty
	// for a verbless sentence.
	Verb string

	// Candidates holds the still-ambiguous objects, in scope order.
	Candidates []world.ObjectID

	// Suggestion is an optional near-miss vocabulary word attached to
	// UnknownWord when typo suggestions are enabled.
	Suggestion string
}

// Error implements the error interface with a diagnostic (not player-facing)
// description.
func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownWord, KindObjectNotVisible, KindNotHeld:
		return fmt.Sprintf("parse: %s (%q)", e.Kind, e.Word)
	case KindAmbiguous:
		names := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			names[i] = string(c)
		}
		return fmt.Sprintf("parse: ambiguous %q: %s", e.Word, strings.Join(names, ", "))
	case KindNoSyntaxMatch, KindNothingHere:
		return fmt.Sprintf("parse: %s (%q)", e.Kind, e.Verb)
	default:
		return fmt.Sprintf("parse: %s", e.Kind)
	}
}

func unknownWord(word, suggestion string) *Error {
	return &Error{Kind: KindUnknownWord, Word: word, Suggestion: suggestion}
}

func notVisible(word string) *Error {
	return &Error{Kind: KindObjectNotVisible, Word: word}
}

func ambiguous(word string, candidates []world.ObjectID) *Error {
	return &Error{Kind: KindAmbiguous, Word: word, Candidates: candidates}
}

func noSyntax(verb string) *Error {
	return &Error{Kind: KindNoSyntaxMatch, Verb: verb}
}
