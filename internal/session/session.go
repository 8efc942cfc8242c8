// Package session manages the cohesive loop of a running game: parsing
// player input, performing commands against the world, persisting the
// resulting events and projecting the current state.
package session

import (
	"errors"
	"fmt"

	"github.com/jsredmond/grue/internal/data"
	"github.com/jsredmond/grue/internal/game"
	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/vocab"
	"github.com/jsredmond/grue/internal/world"
)

// ErrQuit signals that the player asked to end the session. UI clients treat
// it as a clean shutdown, not a failure.
var ErrQuit = errors.New("quit requested")

// Store defines the dependency required by Session to persist events
type Store interface {
	Append(evt game.Event) error
	Load() ([]game.Event, error)
	Close() error
}

// Options carry the tunable parser behavior resolved from configuration.
type Options struct {
	DropOrder   parser.DropOrder
	Suggestions bool
}

// Session coordinates taking commands, executing them, persisting events,
// and projecting the current game state.
type Session struct {
	world  *world.World
	parser *parser.Parser
	store  Store
	state  *game.State
}

// NewSession bootstraps a game session over the data directories, falling
// back to the built-in world and grammar when no definitions are found.
func NewSession(dataDirs []string, store Store, opts Options) (*Session, error) {
	loader := data.NewLoader(dataDirs)

	w, err := loader.LoadWorld()
	if errors.Is(err, data.ErrNotFound) {
		w = game.BuiltinWorld()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	entries := vocab.DefaultLexicon()
	extra, err := loader.LoadVocabulary()
	if err != nil && !errors.Is(err, data.ErrNotFound) {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	entries = append(entries, extra...)
	entries = append(entries, worldVocabulary(w)...)

	builder := vocab.NewBuilder()
	builder.AddAll(entries)
	table := builder.Build()

	patterns, err := loader.LoadSyntax()
	var syntax *parser.SyntaxTable
	if errors.Is(err, data.ErrNotFound) {
		syntax = parser.NewSyntaxTable(parser.DefaultSyntax())
	} else if err != nil {
		return nil, fmt.Errorf("failed to load syntax: %w", err)
	} else {
		syntax = parser.NewSyntaxTable(patterns)
	}

	s := &Session{
		world: w,
		parser: parser.New(table, syntax, parser.Options{
			DropOrder:   opts.DropOrder,
			Suggestions: opts.Suggestions,
		}),
		store: store,
	}
	if err := s.RebuildState(); err != nil {
		return nil, err
	}
	if !s.state.Started {
		if err := s.ApplyAndAppend(&game.GameStartedEvent{Room: w.Start}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// worldVocabulary derives noun and adjective entries from the object table so
// the lexer recognizes every referable thing in the loaded world.
func worldVocabulary(w *world.World) []vocab.Entry {
	var entries []vocab.Entry
	for _, obj := range w.Objects {
		for _, syn := range obj.Synonyms {
			entries = append(entries, vocab.Entry{Surface: syn, Part: vocab.Noun, Canonical: syn})
		}
		for _, adj := range obj.Adjectives {
			entries = append(entries, vocab.Entry{Surface: adj, Part: vocab.Adjective, Canonical: adj})
		}
	}
	return entries
}

// RebuildState reads the entire event log from the store and projects the
// latest game state.
func (s *Session) RebuildState() error {
	events, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load event log: %w", err)
	}

	proj := game.NewProjector()
	state, err := proj.Build(events)
	if err != nil {
		return fmt.Errorf("failed to project game state: %w", err)
	}

	s.state = state
	return nil
}

// State returns the current projected game state.
func (s *Session) State() *game.State {
	return s.state
}

// View returns the player's current perspective on the world.
func (s *Session) View() *game.WorldView {
	return &game.WorldView{World: s.world, State: s.state}
}

// Parser exposes the configured parser, mainly for UI autocompletion.
func (s *Session) Parser() *parser.Parser {
	return s.parser
}

// Look describes the player's current room.
func (s *Session) Look() string {
	return game.DescribeRoom(s.View())
}

// ApplyAndAppend folds an event into the projected state and persists it.
func (s *Session) ApplyAndAppend(evt game.Event) error {
	if err := evt.Apply(s.state); err != nil {
		return err
	}
	if err := s.store.Append(evt); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// Execute takes a raw command string from a UI client, runs one full turn
// and returns the text to show the player. Parse failures are reported as
// normal game text, not errors; ErrQuit marks an orderly exit.
func (s *Session) Execute(input string) (string, error) {
	view := s.View()
	cmd, perr := s.parser.Parse(input, view)
	if perr != nil {
		return game.RenderError(perr, view), nil
	}

	if cmd.Action == "quit" {
		return "", ErrQuit
	}

	result, err := game.Perform(cmd, s.world, s.state)
	if err != nil {
		return "", err
	}
	for _, evt := range result.Events {
		if err := s.ApplyAndAppend(evt); err != nil {
			return "", err
		}
	}
	return result.Text, nil
}
