package config

import (
	"fmt"

	"github.com/cognicore/keywords/pkg/keywords/lexicon"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
	"github.com/cognicore/keywords/pkg/keywords/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	Language     string
	StoplistPath string
	LexiconPath  string
	Tagger       string
}

// NewLoader creates a loader for the files named in opts.
func NewLoader(opts Options) *Loader {
	return &Loader{
		Language:     opts.Language,
		StoplistPath: opts.StoplistPath,
		LexiconPath:  opts.LexiconPath,
		Tagger:       opts.Tagger,
	}
}

// Components holds all loaded configuration components
type Components struct {
	Lexicon  *lexicon.Lexicon
	Backend  nlp.Backend
	Stoplist *stoplist.Manager
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	language := l.Language
	if language == "" {
		language = stoplist.DefaultLanguage
	}

	// Lexicon: built-in, extended by the configured file
	comp.Lexicon = lexicon.Default()
	if l.LexiconPath != "" {
		extra, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon.Merge(extra)
	}

	// Stoplist: a file wins over the built-in list
	if l.StoplistPath != "" {
		stops, err := stoplist.LoadFromYAML(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stops
	} else {
		stops, err := stoplist.ForLanguage(language)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stops
	}

	kind, err := nlp.ParseTaggerKind(l.Tagger)
	if err != nil {
		return nil, err
	}
	backend, err := nlp.NewBackend(language, kind, comp.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("load backend: %w", err)
	}
	comp.Backend = backend

	return comp, nil
}
