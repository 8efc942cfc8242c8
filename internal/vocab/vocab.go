// Package vocab implements the static vocabulary table that maps surface
// words to their part of speech and canonical id. The table is built once at
// startup and never mutated afterwards, so it can be shared freely between
// concurrent parses.
package vocab

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// PartOfSpeech classifies a vocabulary word.
type PartOfSpeech string

const (
	Verb        PartOfSpeech = "verb"
	Noun        PartOfSpeech = "noun"
	Adjective   PartOfSpeech = "adjective"
	Preposition PartOfSpeech = "preposition"
	Direction   PartOfSpeech = "direction"
	Article     PartOfSpeech = "article"
	Unknown     PartOfSpeech = "unknown"
)

// Entry is a single vocabulary record. Many surface forms (synonyms) may map
// to the same canonical id.
type Entry struct {
	Surface   string       `yaml:"surface"`
	Part      PartOfSpeech `yaml:"part"`
	Canonical string       `yaml:"canonical"`
}

// Builder accumulates entries before sealing them into an immutable Table.
type Builder struct {
	entries map[string]Entry
	order   []string
}

// NewBuilder creates an empty vocabulary builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]Entry)}
}

// Add registers a surface form. The first registration of a surface wins;
// later registrations of the same word are ignored so that the built-in
// lexicon keeps precedence over world-derived noun entries.
func (b *Builder) Add(surface string, part PartOfSpeech, canonical string) {
	surface = Normalize(surface)
	if surface == "" {
		return
	}
	if canonical == "" {
		canonical = surface
	}
	if _, ok := b.entries[surface]; ok {
		return
	}
	b.entries[surface] = Entry{Surface: surface, Part: part, Canonical: canonical}
	b.order = append(b.order, surface)
}

// AddAll registers a batch of entries in order.
func (b *Builder) AddAll(entries []Entry) {
	for _, e := range entries {
		b.Add(e.Surface, e.Part, e.Canonical)
	}
}

// Build seals the builder into an immutable Table.
func (b *Builder) Build() *Table {
	entries := make(map[string]Entry, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}
	surfaces := append([]string(nil), b.order...)
	sort.Strings(surfaces)
	return &Table{entries: entries, surfaces: surfaces}
}

// Table is the read-only vocabulary. Safe for concurrent use.
type Table struct {
	entries  map[string]Entry
	surfaces []string
}

// Lookup returns the entry for a surface word.
func (t *Table) Lookup(word string) (Entry, bool) {
	e, ok := t.entries[Normalize(word)]
	return e, ok
}

// Len reports how many distinct surface forms the table holds.
func (t *Table) Len() int {
	return len(t.entries)
}

// Surfaces returns every known surface form in sorted order.
func (t *Table) Surfaces() []string {
	return append([]string(nil), t.surfaces...)
}

// Suggest returns the closest known surface form within a length-scaled
// edit-distance limit, for "did you mean" hints on unknown words. Returns ""
// when nothing is close enough. Ties break alphabetically so the result is
// deterministic.
func (t *Table) Suggest(word string) string {
	word = Normalize(word)
	if len(word) < 2 {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range t.surfaces {
		dist := levenshtein.ComputeDistance(word, cand)
		if dist == 0 || dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Normalize lowercases a word and trims surrounding space and punctuation so
// that table keys are uniform.
func Normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	return strings.Trim(word, ".,!?;:\"'")
}
