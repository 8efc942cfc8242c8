// Package persistence implements the append-only JSONL event log that backs
// saved games: each turn's events are appended as they happen, and loading a
// game is a full replay of the log.
package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsredmond/grue/internal/game"
)

// EventWrapper carries the concrete event type alongside its payload so the
// polymorphic event stream survives serialization.
type EventWrapper struct {
	Type  game.EventType  `json:"type"`
	Event json.RawMessage `json:"data"`
}

// Store handles append-only storage of the event log.
type Store struct {
	file *os.File
}

// NewStore opens or creates the file at path for appending.
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Store{file: file}, nil
}

// Append marshals an event onto the log and syncs it to disk.
func (s *Store) Append(evt game.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	wrapper := EventWrapper{Type: evt.Type(), Event: data}
	wrapperData, err := json.Marshal(wrapper)
	if err != nil {
		return err
	}
	if _, err := s.file.Write(append(wrapperData, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load replays the log from the beginning and unpacks every event.
func (s *Store) Load() ([]game.Event, error) {
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var events []game.Event
	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		var wrapper EventWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode event wrapper: %w", err)
		}
		evt, err := decode(wrapper)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}

func decode(wrapper EventWrapper) (game.Event, error) {
	var evt game.Event
	switch wrapper.Type {
	case game.EventGameStarted:
		evt = &game.GameStartedEvent{}
	case game.EventPlayerMoved:
		evt = &game.PlayerMovedEvent{}
	case game.EventObjectTaken:
		evt = &game.ObjectTakenEvent{}
	case game.EventObjectDropped:
		evt = &game.ObjectDroppedEvent{}
	case game.EventObjectPut:
		evt = &game.ObjectPutEvent{}
	case game.EventObjectRemoved:
		evt = &game.ObjectRemovedEvent{}
	case game.EventObjectOpened:
		evt = &game.ObjectOpenedEvent{}
	case game.EventObjectClosed:
		evt = &game.ObjectClosedEvent{}
	case game.EventLightSwitched:
		evt = &game.LightSwitchedEvent{}
	case game.EventTurnPassed:
		evt = &game.TurnPassedEvent{}
	case game.EventTreasureDeposited:
		evt = &game.TreasureDepositedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type %q in log", wrapper.Type)
	}
	if err := json.Unmarshal(wrapper.Event, evt); err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", wrapper.Type, err)
	}
	return evt, nil
}
