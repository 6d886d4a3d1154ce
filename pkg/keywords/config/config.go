package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
)

// Options is the extraction configuration, usually read from a YAML file
type Options struct {
	Method       string `yaml:"method" mapstructure:"method"`
	MaxKeywords  int    `yaml:"max_keywords" mapstructure:"max_keywords"`
	Language     string `yaml:"language" mapstructure:"language"`
	DocCounter   int    `yaml:"doc_counter" mapstructure:"doc_counter"`
	Workers      int    `yaml:"workers" mapstructure:"workers"`
	StoplistPath string `yaml:"stoplist_path" mapstructure:"stoplist_path"`
	LexiconPath  string `yaml:"lexicon_path" mapstructure:"lexicon_path"`
	Tagger       string `yaml:"tagger" mapstructure:"tagger"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Method:      "wf",
		MaxKeywords: 10,
		Language:    "english",
		DocCounter:  1,
		Workers:     1,
		Tagger:      string(nlp.TaggerPerceptron),
	}
}

// LoadOptions reads options from a YAML file. Fields missing from the file
// keep their defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks the numeric limits and the tagger name. The method is
// checked where it is parsed.
func (o Options) Validate() error {
	if o.MaxKeywords < 0 {
		return fmt.Errorf("max_keywords %d: %w: must not be negative", o.MaxKeywords, internalerr.ErrInvalidConfig)
	}
	if o.DocCounter < 0 {
		return fmt.Errorf("doc_counter %d: %w: must not be negative", o.DocCounter, internalerr.ErrInvalidConfig)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers %d: %w: must not be negative", o.Workers, internalerr.ErrInvalidConfig)
	}
	if _, err := nlp.ParseTaggerKind(o.Tagger); err != nil {
		return err
	}
	return nil
}
