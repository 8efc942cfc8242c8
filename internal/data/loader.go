// Package data handles reading game definitions from the read-only data
// layer: world files, vocabulary extensions and syntax patterns, all in yaml.
package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/vocab"
	"github.com/jsredmond/grue/internal/world"
)

// ErrNotFound reports that a reference exists in no data directory. Callers
// that have a built-in fallback check for it with errors.Is.
var ErrNotFound = errors.New("reference not found in any data directory")

// Loader handles reading and instantiating records from the read-only data layer
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Data Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// worldFile is the on-disk shape of a world definition.
type worldFile struct {
	Start   world.RoomID    `yaml:"start"`
	Rooms   []*world.Room   `yaml:"rooms"`
	Objects []*world.Object `yaml:"objects"`
}

// LoadWorld constructs an indexed World from world.yaml.
func (l *Loader) LoadWorld() (*world.World, error) {
	var f worldFile
	if err := l.load("world.yaml", &f); err != nil {
		return nil, err
	}
	w := &world.World{
		Start:   f.Start,
		Rooms:   f.Rooms,
		Objects: f.Objects,
	}
	if err := w.Index(); err != nil {
		return nil, fmt.Errorf("invalid world definition: %w", err)
	}
	return w, nil
}

// LoadVocabulary reads additional vocabulary entries from vocabulary.yaml.
// These layer on top of the built-in lexicon, earlier definitions winning.
func (l *Loader) LoadVocabulary() ([]vocab.Entry, error) {
	var entries []vocab.Entry
	if err := l.load("vocabulary.yaml", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadSyntax reads syntax patterns from syntax.yaml.
func (l *Loader) LoadSyntax() ([]parser.Pattern, error) {
	var patterns []parser.Pattern
	if err := l.load("syntax.yaml", &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (l *Loader) load(ref string, target interface{}) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to open reference %s: %w", ref, err)
		}
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(target); err != nil {
			return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, ref)
}
