package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/vocab"
	"github.com/jsredmond/grue/internal/world"
)

func newGame(t *testing.T) (*world.World, *State, *parser.Parser) {
	t.Helper()
	w := BuiltinWorld()
	s := NewState()
	require.NoError(t, (&GameStartedEvent{Room: w.Start}).Apply(s))

	b := vocab.NewBuilder()
	b.AddAll(vocab.DefaultLexicon())
	for _, obj := range w.Objects {
		for _, syn := range obj.Synonyms {
			b.Add(syn, vocab.Noun, syn)
		}
		for _, adj := range obj.Adjectives {
			b.Add(adj, vocab.Adjective, adj)
		}
	}
	p := parser.New(b.Build(), parser.NewSyntaxTable(parser.DefaultSyntax()), parser.Options{})
	return w, s, p
}

// run parses one command, performs it, and folds its events into the state.
func run(t *testing.T, w *world.World, s *State, p *parser.Parser, input string) string {
	t.Helper()
	view := &WorldView{World: w, State: s}
	cmd, err := p.Parse(input, view)
	require.NoError(t, err, "input %q", input)
	res, err := Perform(cmd, w, s)
	require.NoError(t, err)
	for _, evt := range res.Events {
		require.NoError(t, evt.Apply(s))
	}
	return res.Text
}

// runErr parses one command expecting a parse failure, and renders it.
func runErr(t *testing.T, w *world.World, s *State, p *parser.Parser, input string) string {
	t.Helper()
	view := &WorldView{World: w, State: s}
	_, err := p.Parse(input, view)
	require.Error(t, err, "input %q", input)
	return RenderError(err, view)
}

func TestOpenMailboxRevealsLeaflet(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "open mailbox")
	assert.Equal(t, "Opening the small mailbox reveals a leaflet.", text)
}

func TestTakeFromOpenedContainer(t *testing.T) {
	w, s, p := newGame(t)

	// Closed container hides its contents from scope.
	msg := runErr(t, w, s, p, "take leaflet")
	assert.Equal(t, "You can't see any leaflet here!", msg)

	run(t, w, s, p, "open mailbox")
	text := run(t, w, s, p, "take leaflet")
	assert.Equal(t, "Taken.", text)
	assert.True(t, s.Holding("leaflet"))
}

func TestReadLeaflet(t *testing.T) {
	w, s, p := newGame(t)
	run(t, w, s, p, "open mailbox")
	run(t, w, s, p, "take leaflet")

	text := run(t, w, s, p, "read leaflet")
	assert.Contains(t, text, "WELCOME TO GRUE!")
}

func TestTakeScenery(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "take house")
	assert.Equal(t, "You can't take that.", text)
	assert.False(t, s.Holding("house"))
}

func TestTakeAllReportsPerObject(t *testing.T) {
	w, s, p := newGame(t)
	run(t, w, s, p, "open mailbox")

	text := run(t, w, s, p, "take all")
	lines := strings.Split(text, "\n")
	assert.Equal(t, []string{"leaflet: Taken.", "welcome mat: Taken."}, lines)
	assert.True(t, s.Holding("leaflet"))
	assert.True(t, s.Holding("mat"))
}

func TestDropAllReportsPerObject(t *testing.T) {
	w, s, p := newGame(t)
	run(t, w, s, p, "take mat")
	run(t, w, s, p, "open mailbox")
	run(t, w, s, p, "take leaflet")

	text := run(t, w, s, p, "drop all")
	lines := strings.Split(text, "\n")
	assert.Equal(t, []string{"welcome mat: Dropped.", "leaflet: Dropped."}, lines)
	assert.Empty(t, s.Inventory)
}

func TestGoMovesAndDescribesDestination(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "north")
	assert.Equal(t, world.RoomID("north-of-house"), s.Location)
	assert.Contains(t, text, "North of House")
	assert.Equal(t, 1, s.Moves)
}

func TestGoInvalidDirection(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "go west")
	assert.Equal(t, "You can't go that way.", text)
	assert.Equal(t, world.RoomID("west-of-house"), s.Location)
	assert.Equal(t, 0, s.Moves)
}

func TestDarkRoomDescription(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "attic"

	text := run(t, w, s, p, "look")
	assert.Equal(t, "It is pitch black. You are likely to be eaten by a grue.", text)
}

func TestDarkRoomBlocksTaking(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "attic"

	msg := runErr(t, w, s, p, "take knife")
	assert.Equal(t, "It's too dark to see!", msg)
}

func TestLightingLampInDarkShowsRoom(t *testing.T) {
	w, s, p := newGame(t)
	require.NoError(t, (&ObjectTakenEvent{Object: "lantern"}).Apply(s))
	s.Location = "attic"

	text := run(t, w, s, p, "turn on lamp")
	assert.Contains(t, text, "The brass lantern is now on.")
	assert.Contains(t, text, "Attic")

	// And the room is playable now.
	run(t, w, s, p, "take knife")
	assert.True(t, s.Holding("knife"))
}

func TestExtinguishingLampInDarkRoomWarns(t *testing.T) {
	w, s, p := newGame(t)
	require.NoError(t, (&ObjectTakenEvent{Object: "lantern"}).Apply(s))
	require.NoError(t, (&LightSwitchedEvent{Object: "lantern", On: true}).Apply(s))
	s.Location = "attic"

	text := run(t, w, s, p, "turn lamp off")
	assert.Contains(t, text, "The brass lantern is now off.")
	assert.Contains(t, text, "It is now pitch black.")
}

func TestPutInClosedContainer(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "living-room"
	require.NoError(t, (&ObjectTakenEvent{Object: "painting"}).Apply(s))

	text := run(t, w, s, p, "put painting in case")
	assert.Equal(t, "The trophy case is closed.", text)
	assert.True(t, s.Holding("painting"))
}

func TestDepositingTreasureScoresOnce(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "living-room"
	require.NoError(t, (&ObjectTakenEvent{Object: "painting"}).Apply(s))

	run(t, w, s, p, "open case")
	run(t, w, s, p, "put painting in case")
	assert.Equal(t, 6, s.Score)

	// Taking it back out and redepositing scores nothing extra.
	run(t, w, s, p, "take painting")
	run(t, w, s, p, "put painting in case")
	assert.Equal(t, 6, s.Score)
}

func TestInventoryListing(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "inventory")
	assert.Equal(t, "You are empty-handed.", text)

	run(t, w, s, p, "take mat")
	text = run(t, w, s, p, "i")
	assert.Contains(t, text, "You are carrying:")
	assert.Contains(t, text, "welcome mat")
}

func TestEatGarlic(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "kitchen"
	run(t, w, s, p, "open sack")
	run(t, w, s, p, "take garlic")

	text := run(t, w, s, p, "eat garlic")
	assert.Equal(t, "Thank you very much. It really hit the spot.", text)
	assert.False(t, s.Holding("garlic"))
	assert.True(t, s.ObjectLocations["garlic"].IsNowhere())
}

func TestAttackRequiresWeapon(t *testing.T) {
	w, s, p := newGame(t)
	s.Location = "living-room"
	run(t, w, s, p, "take sword")

	text := run(t, w, s, p, "attack rug with sword")
	assert.Equal(t, "Attacking the oriental rug with the elvish sword has no effect.", text)
}

func TestExamineFallsBackWhenNoDescription(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "examine mat")
	assert.Equal(t, "There's nothing special about the welcome mat.", text)

	text = run(t, w, s, p, "look at house")
	assert.Contains(t, text, "beautiful colonial house")
}

func TestScoreReport(t *testing.T) {
	w, s, p := newGame(t)
	run(t, w, s, p, "take mat")

	text := run(t, w, s, p, "score")
	assert.Equal(t, "Your score is 0, in 1 moves.", text)
}

func TestWaitPassesTime(t *testing.T) {
	w, s, p := newGame(t)

	text := run(t, w, s, p, "wait")
	assert.Equal(t, "Time passes.", text)
	assert.Equal(t, 1, s.Moves)
}
