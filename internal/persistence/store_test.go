package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsredmond/grue/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "save.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	events := []game.Event{
		&game.GameStartedEvent{Room: "west-of-house"},
		&game.ObjectTakenEvent{Object: "mat"},
		&game.PlayerMovedEvent{To: "north-of-house"},
		&game.LightSwitchedEvent{Object: "lantern", On: true},
		&game.TreasureDepositedEvent{Object: "painting", Points: 6},
	}
	for _, evt := range events {
		require.NoError(t, store.Append(evt))
	}

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, len(events))

	started, ok := loaded[0].(*game.GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, "west-of-house", string(started.Room))

	lit, ok := loaded[3].(*game.LightSwitchedEvent)
	require.True(t, ok)
	assert.True(t, lit.On)

	deposited, ok := loaded[4].(*game.TreasureDepositedEvent)
	require.True(t, ok)
	assert.Equal(t, 6, deposited.Points)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	events, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.jsonl")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(&game.GameStartedEvent{Room: "cave"}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Append(&game.TurnPassedEvent{}))

	events, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, game.EventGameStarted, events[0].Type())
	assert.Equal(t, game.EventTurnPassed, events[1].Type())
}

func TestStoreRejectsUnknownEventType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"Mystery","data":{}}`+"\n"), 0644))

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load()
	assert.ErrorContains(t, err, "unknown event type")
}

func TestStoreProjectsState(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(&game.GameStartedEvent{Room: "west-of-house"}))
	require.NoError(t, store.Append(&game.ObjectTakenEvent{Object: "mat"}))

	events, err := store.Load()
	require.NoError(t, err)

	state, err := game.NewProjector().Build(events)
	require.NoError(t, err)
	assert.True(t, state.Holding("mat"))
	assert.Equal(t, 1, state.Moves)
}
