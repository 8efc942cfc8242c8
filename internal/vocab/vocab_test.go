package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTable() *Table {
	b := NewBuilder()
	b.AddAll(DefaultLexicon())
	return b.Build()
}

func TestLookupSynonymCollapsesToCanonical(t *testing.T) {
	table := buildTable()

	for _, surface := range []string{"take", "get", "grab", "carry"} {
		entry, ok := table.Lookup(surface)
		assert.True(t, ok, "expected %q in table", surface)
		assert.Equal(t, Verb, entry.Part)
		assert.Equal(t, "take", entry.Canonical)
	}
}

func TestLookupNormalizesCaseAndPunctuation(t *testing.T) {
	table := buildTable()

	entry, ok := table.Lookup("TAKE.")
	assert.True(t, ok)
	assert.Equal(t, "take", entry.Canonical)
}

func TestLookupUnknownWord(t *testing.T) {
	table := buildTable()

	_, ok := table.Lookup("xyzzy")
	assert.False(t, ok)
}

func TestDirectionAbbreviations(t *testing.T) {
	table := buildTable()

	cases := map[string]string{
		"n": "north", "s": "south", "e": "east", "w": "west",
		"ne": "northeast", "u": "up", "d": "down",
	}
	for surface, canonical := range cases {
		entry, ok := table.Lookup(surface)
		assert.True(t, ok, "expected %q in table", surface)
		assert.Equal(t, Direction, entry.Part)
		assert.Equal(t, canonical, entry.Canonical)
	}
}

func TestBuilderFirstRegistrationWins(t *testing.T) {
	b := NewBuilder()
	b.Add("lamp", Verb, "take")
	b.Add("lamp", Noun, "lamp")
	table := b.Build()

	entry, ok := table.Lookup("lamp")
	assert.True(t, ok)
	assert.Equal(t, Verb, entry.Part)
	assert.Equal(t, "take", entry.Canonical)
	assert.Equal(t, 1, table.Len())
}

func TestBuilderEmptyCanonicalDefaultsToSurface(t *testing.T) {
	b := NewBuilder()
	b.Add("mailbox", Noun, "")
	table := b.Build()

	entry, _ := table.Lookup("mailbox")
	assert.Equal(t, "mailbox", entry.Canonical)
}

func TestSuggestFindsNearMiss(t *testing.T) {
	table := buildTable()

	assert.Equal(t, "take", table.Suggest("taake"))
}

func TestSuggestRespectsDistanceLimit(t *testing.T) {
	table := buildTable()

	// Nothing in the lexicon is within edit distance of this.
	assert.Equal(t, "", table.Suggest("qqqqqqqq"))
}

func TestSuggestIgnoresVeryShortWords(t *testing.T) {
	table := buildTable()

	assert.Equal(t, "", table.Suggest("q"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "lantern", Normalize("  Lantern! "))
	assert.Equal(t, "north", Normalize("NORTH."))
	assert.Equal(t, "", Normalize("  "))
}
