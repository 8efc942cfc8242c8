// Package lexer splits raw player input into vocabulary-tagged tokens.
// Tokenizing is a pure function of the input string and the vocabulary
// table; unknown words are tagged rather than rejected so that the
// dispatcher can report the offending word with its exact position.
package lexer

import (
	"errors"
	"strings"

	"github.com/jsredmond/grue/internal/vocab"
)

// Sentinel results for input that never reaches tokenization proper. The
// parser maps these onto its own error taxonomy.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformedInput = errors.New("malformed input")
)

// MaxWords bounds a single command. Anything longer is classified as
// malformed before tokenization proceeds.
const MaxWords = 24

// Token is one word of player input after vocabulary lookup. Canonical is
// empty exactly when the word is absent from the vocabulary table.
type Token struct {
	Raw       string
	Canonical string
	Part      vocab.PartOfSpeech
	All       bool
}

// Known reports whether the word was found in the vocabulary.
func (t Token) Known() bool {
	return t.Canonical != ""
}

// Tokenize splits input on whitespace and punctuation, lowercases each word,
// and looks it up in the vocabulary table. Articles are recognized and
// dropped. "all" and "everything" become the All meta-token instead of a
// vocabulary noun. Unknown words tokenize with an empty canonical id and
// Part set to Unknown.
func Tokenize(input string, table *vocab.Table) ([]Token, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	if strings.Count(trimmed, `"`)%2 != 0 {
		return nil, ErrMalformedInput
	}
	for _, r := range trimmed {
		if !allowedRune(r) {
			return nil, ErrMalformedInput
		}
	}

	words := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '.' || r == '"'
	})
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	if len(words) > MaxWords {
		return nil, ErrMalformedInput
	}

	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		raw := vocab.Normalize(word)
		if raw == "" {
			continue
		}
		if raw == "all" || raw == "everything" {
			tokens = append(tokens, Token{Raw: raw, All: true})
			continue
		}
		entry, ok := table.Lookup(raw)
		if !ok {
			tokens = append(tokens, Token{Raw: raw, Part: vocab.Unknown})
			continue
		}
		if entry.Part == vocab.Article {
			continue
		}
		tokens = append(tokens, Token{Raw: raw, Canonical: entry.Canonical, Part: entry.Part})
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	return tokens, nil
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '\t', ',', '.', '!', '?', '\'', '-', '"':
		return true
	}
	return false
}
