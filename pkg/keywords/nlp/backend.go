package nlp

import (
	"fmt"
	"strings"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/lexicon"
)

// Backend bundles the linguistic capabilities the extraction pipeline needs.
// The pipeline only talks to this interface, so taggers and lemmatizers can be
// swapped without touching scoring code.
type Backend interface {
	Tag(sentences [][]string) [][]TaggedWord
	Lemmatize(sentences [][]TaggedWord) [][]string
	Stem(word string) string
}

// Standard composes a Backend from its three parts.
type Standard struct {
	Tagger     Tagger
	Lemmatizer Lemmatizer
	Stemmer    Stemmer
}

// Tag implements Backend.
func (s *Standard) Tag(sentences [][]string) [][]TaggedWord {
	return s.Tagger.Tag(sentences)
}

// Lemmatize implements Backend.
func (s *Standard) Lemmatize(sentences [][]TaggedWord) [][]string {
	return s.Lemmatizer.Lemmatize(sentences)
}

// Stem implements Backend.
func (s *Standard) Stem(word string) string {
	return s.Stemmer.Stem(word)
}

// TaggerKind selects the tagging model.
type TaggerKind string

const (
	TaggerPerceptron TaggerKind = "perceptron"
	TaggerRules      TaggerKind = "rules"
)

// NewEnglish builds the English backend. A nil lexicon uses lexicon.Default().
func NewEnglish(kind TaggerKind, lex *lexicon.Lexicon) (*Standard, error) {
	return NewBackend("english", kind, lex)
}

// NewBackend builds a backend whose stemmer follows language. Tagging and
// lemmatization always use the English models; other languages only change
// stemming (and, outside this package, the stopword set).
func NewBackend(language string, kind TaggerKind, lex *lexicon.Lexicon) (*Standard, error) {
	if lex == nil {
		lex = lexicon.Default()
	}
	stemmer, err := NewSnowballStemmer(language)
	if err != nil {
		return nil, err
	}

	rules := NewRuleTagger(lex)
	var tagger Tagger = rules
	if kind != TaggerRules {
		tagger = NewPerceptronTagger(rules)
	}

	return &Standard{
		Tagger:     tagger,
		Lemmatizer: NewRuleLemmatizer(lex),
		Stemmer:    stemmer,
	}, nil
}

// ParseTaggerKind resolves a tagger name. The empty string selects the
// perceptron.
func ParseTaggerKind(name string) (TaggerKind, error) {
	switch TaggerKind(strings.ToLower(name)) {
	case "", TaggerPerceptron:
		return TaggerPerceptron, nil
	case TaggerRules:
		return TaggerRules, nil
	}
	return "", fmt.Errorf("tagger %q: %w", name, internalerr.ErrInvalidConfig)
}
