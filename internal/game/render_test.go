package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/world"
)

func builtinView() *WorldView {
	w := BuiltinWorld()
	s := NewState()
	s.Started = true
	s.Location = w.Start
	return &WorldView{World: w, State: s}
}

func TestRenderEmptyAndMalformed(t *testing.T) {
	view := builtinView()

	assert.Equal(t, "I beg your pardon?",
		RenderError(&parser.Error{Kind: parser.KindEmptyInput}, view))
	assert.Equal(t, "I don't understand that.",
		RenderError(&parser.Error{Kind: parser.KindMalformedInput}, view))
}

func TestRenderUnknownWord(t *testing.T) {
	view := builtinView()

	msg := RenderError(&parser.Error{Kind: parser.KindUnknownWord, Word: "xyzzy"}, view)
	assert.Equal(t, `I don't know the word "xyzzy".`, msg)

	msg = RenderError(&parser.Error{Kind: parser.KindUnknownWord, Word: "taek", Suggestion: "take"}, view)
	assert.Equal(t, `I don't know the word "taek". (Did you mean "take"?)`, msg)
}

func TestRenderNoSyntaxMatch(t *testing.T) {
	view := builtinView()

	// A verbless sentence and an unparseable verb phrase read differently.
	msg := RenderError(&parser.Error{Kind: parser.KindNoSyntaxMatch, Word: "lantern"}, view)
	assert.Equal(t, "There was no verb in that sentence!", msg)

	msg = RenderError(&parser.Error{Kind: parser.KindNoSyntaxMatch, Verb: "open"}, view)
	assert.Equal(t, "I didn't understand that sentence.", msg)
}

func TestRenderAmbiguityNamesTwoCandidates(t *testing.T) {
	view := builtinView()

	msg := RenderError(&parser.Error{
		Kind:       parser.KindAmbiguous,
		Word:       "blade",
		Candidates: []world.ObjectID{"sword", "knife"},
	}, view)
	assert.Equal(t, "Which blade do you mean, the elvish sword or the nasty knife?", msg)
}

func TestRenderAmbiguityWithManyCandidatesStaysOpen(t *testing.T) {
	view := builtinView()

	msg := RenderError(&parser.Error{
		Kind:       parser.KindAmbiguous,
		Word:       "thing",
		Candidates: []world.ObjectID{"sword", "knife", "rope"},
	}, view)
	assert.Equal(t, "Which thing do you mean?", msg)
}

func TestRenderPreconditionFailures(t *testing.T) {
	view := builtinView()

	assert.Equal(t, "You don't have that!",
		RenderError(&parser.Error{Kind: parser.KindNotHeld, Word: "sword"}, view))
	assert.Equal(t, "It's too dark to see!",
		RenderError(&parser.Error{Kind: parser.KindDarkRoom, Verb: "take"}, view))
	assert.Equal(t, "You can't see any leaflet here!",
		RenderError(&parser.Error{Kind: parser.KindObjectNotVisible, Word: "leaflet"}, view))
	assert.Equal(t, "There's nothing here you can take.",
		RenderError(&parser.Error{Kind: parser.KindNothingHere, Verb: "take"}, view))
}

func TestViewScopeAndLight(t *testing.T) {
	view := builtinView()

	scope := view.Scope()
	assert.True(t, scope.Contains("mailbox"))
	assert.True(t, scope.Contains("house"), "room globals are in scope")
	assert.False(t, scope.Contains("leaflet"), "closed container hides contents")
	assert.True(t, view.IsLit())

	// Opening the mailbox brings the leaflet into scope.
	view.State.FlagOverrides["mailbox"] = map[world.Flag]bool{world.FlagOpen: true}
	assert.True(t, view.Scope().Contains("leaflet"))
}

func TestViewCarriedLitLampLightsDarkRoom(t *testing.T) {
	view := builtinView()
	view.State.Location = "cellar"
	assert.False(t, view.IsLit())

	view.State.Inventory = []world.ObjectID{"lantern"}
	view.State.ObjectLocations["lantern"] = world.Held()
	assert.False(t, view.IsLit(), "an unlit lamp gives no light")

	view.State.FlagOverrides["lantern"] = map[world.Flag]bool{world.FlagLit: true}
	assert.True(t, view.IsLit())
}

func TestViewObjectOverridesDoNotMutateWorld(t *testing.T) {
	view := builtinView()
	view.State.FlagOverrides["mailbox"] = map[world.Flag]bool{world.FlagOpen: true}

	eff, ok := view.Object("mailbox")
	assert.True(t, ok)
	assert.True(t, eff.Flags.Has(world.FlagOpen))

	base, _ := view.World.Object("mailbox")
	assert.False(t, base.Flags.Has(world.FlagOpen), "definition must stay untouched")
}
