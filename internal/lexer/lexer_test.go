package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsredmond/grue/internal/vocab"
)

func testTable() *vocab.Table {
	b := vocab.NewBuilder()
	b.AddAll(vocab.DefaultLexicon())
	b.Add("lantern", vocab.Noun, "lantern")
	b.Add("lamp", vocab.Noun, "lantern")
	b.Add("brass", vocab.Adjective, "brass")
	return b.Build()
}

func TestTokenizeEmptyInput(t *testing.T) {
	_, err := Tokenize("", testTable())
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Tokenize("   \t ", testTable())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTokenizeArticlesAreDropped(t *testing.T) {
	tokens, err := Tokenize("take the lantern", testTable())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "take", tokens[0].Canonical)
	assert.Equal(t, "lantern", tokens[1].Canonical)
}

func TestTokenizeInputOfOnlyArticles(t *testing.T) {
	_, err := Tokenize("the a an", testTable())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTokenizeSynonymCanonicalization(t *testing.T) {
	tokens, err := Tokenize("grab lamp", testTable())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "take", tokens[0].Canonical)
	assert.Equal(t, vocab.Verb, tokens[0].Part)
	assert.Equal(t, "lantern", tokens[1].Canonical)
	assert.Equal(t, vocab.Noun, tokens[1].Part)
}

func TestTokenizeUnknownWordIsTaggedNotRejected(t *testing.T) {
	tokens, err := Tokenize("take xyzzy", testTable())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.False(t, tokens[1].Known())
	assert.Equal(t, "xyzzy", tokens[1].Raw)
	assert.Equal(t, vocab.Unknown, tokens[1].Part)
	assert.Empty(t, tokens[1].Canonical)
}

func TestTokenizeAllMetaToken(t *testing.T) {
	for _, word := range []string{"all", "everything", "ALL"} {
		tokens, err := Tokenize("take "+word, testTable())
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.True(t, tokens[1].All, "expected %q to tokenize as ALL", word)
		assert.False(t, tokens[1].Known())
	}
}

func TestTokenizeCaseAndPunctuation(t *testing.T) {
	tokens, err := Tokenize("Take the Brass Lantern.", testTable())
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "take", tokens[0].Canonical)
	assert.Equal(t, "brass", tokens[1].Canonical)
	assert.Equal(t, "lantern", tokens[2].Canonical)
}

func TestTokenizeCommaSplits(t *testing.T) {
	tokens, err := Tokenize("take lantern, lamp", testTable())
	require.NoError(t, err)
	assert.Len(t, tokens, 3)
}

func TestTokenizeMalformedInput(t *testing.T) {
	// Unbalanced quote.
	_, err := Tokenize(`take "lantern`, testTable())
	assert.ErrorIs(t, err, ErrMalformedInput)

	// Disallowed runes.
	_, err = Tokenize("take <lantern>", testTable())
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestTokenizeTooManyWords(t *testing.T) {
	input := strings.TrimSpace(strings.Repeat("lantern ", MaxWords+1))
	_, err := Tokenize(input, testTable())
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestTokenizeKeepsRawForm(t *testing.T) {
	tokens, err := Tokenize("GRAB LAMP", testTable())
	require.NoError(t, err)
	assert.Equal(t, "grab", tokens[0].Raw)
	assert.Equal(t, "lamp", tokens[1].Raw)
}
