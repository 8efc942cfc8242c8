package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validWorld() *World {
	return &World{
		Start: "cave",
		Rooms: []*Room{
			{ID: "cave", Name: "Cave", Exits: map[string]RoomID{"north": "ledge"}},
			{ID: "ledge", Name: "Ledge", Exits: map[string]RoomID{"south": "cave"}},
		},
		Objects: []*Object{
			{ID: "chest", Name: "wooden chest", Synonyms: []string{"chest"},
				Flags: NewFlagSet(FlagContainer, FlagOpenable), Location: InRoom("cave")},
			{ID: "coin", Name: "gold coin", Synonyms: []string{"coin"},
				Flags: NewFlagSet(FlagTakeable), Location: InObject("chest")},
		},
	}
}

func TestIndexValidWorld(t *testing.T) {
	w := validWorld()
	require.NoError(t, w.Index())

	room, ok := w.Room("cave")
	assert.True(t, ok)
	assert.Equal(t, "Cave", room.Name)

	obj, ok := w.Object("coin")
	assert.True(t, ok)
	assert.Equal(t, ObjectID("chest"), obj.Location.Object)
}

func TestIndexRejectsDuplicateRoomID(t *testing.T) {
	w := validWorld()
	w.Rooms = append(w.Rooms, &Room{ID: "cave"})
	assert.ErrorContains(t, w.Index(), "duplicate room id")
}

func TestIndexRejectsDuplicateObjectID(t *testing.T) {
	w := validWorld()
	w.Objects = append(w.Objects, &Object{ID: "coin", Synonyms: []string{"coin"}})
	assert.ErrorContains(t, w.Index(), "duplicate object id")
}

func TestIndexRejectsObjectWithoutSynonyms(t *testing.T) {
	w := validWorld()
	w.Objects[0].Synonyms = nil
	assert.ErrorContains(t, w.Index(), "no synonyms")
}

func TestIndexRejectsUndefinedStartRoom(t *testing.T) {
	w := validWorld()
	w.Start = "void"
	assert.ErrorContains(t, w.Index(), "start room")
}

func TestIndexRejectsDanglingExit(t *testing.T) {
	w := validWorld()
	w.Rooms[0].Exits["down"] = "pit"
	assert.ErrorContains(t, w.Index(), "undefined room")
}

func TestIndexRejectsDanglingLocation(t *testing.T) {
	w := validWorld()
	w.Objects[1].Location = InObject("bag")
	assert.ErrorContains(t, w.Index(), "undefined object")
}

func TestFlagSetYAMLRoundTrip(t *testing.T) {
	var fs FlagSet
	require.NoError(t, yaml.Unmarshal([]byte("[takeable, container, open]"), &fs))
	assert.True(t, fs.Has(FlagTakeable))
	assert.True(t, fs.Has(FlagContainer))
	assert.True(t, fs.Has(FlagOpen))
	assert.False(t, fs.Has(FlagScenery))
}

func TestFlagSetYAMLRejectsUnknownFlag(t *testing.T) {
	var fs FlagSet
	err := yaml.Unmarshal([]byte("[takeable, sparkly]"), &fs)
	assert.ErrorContains(t, err, "unknown object flag")
}

func TestLocRef(t *testing.T) {
	assert.True(t, LocRef{}.IsNowhere())
	assert.False(t, InRoom("cave").IsNowhere())
	assert.False(t, Held().IsNowhere())
}

func TestObjectSynonymAndAdjectiveMatching(t *testing.T) {
	obj := &Object{
		ID:         "lantern",
		Synonyms:   []string{"lantern", "lamp"},
		Adjectives: []string{"brass"},
	}
	assert.True(t, obj.HasSynonym("lamp"))
	assert.False(t, obj.HasSynonym("torch"))
	assert.True(t, obj.HasAdjective("brass"))
	assert.False(t, obj.HasAdjective("rusty"))
}

func TestScopePreservesOrderAndDeduplicates(t *testing.T) {
	s := NewScope("a", "b")
	s.Add("a")
	s.Add("c")

	assert.Equal(t, []ObjectID{"a", "b", "c"}, s.IDs())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("d"))
}
