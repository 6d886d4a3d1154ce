package nlp

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
)

// Stemmer reduces a word to a rule-based root. Stems are coarser than lemmas
// and need not agree with them.
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer stems with the Snowball algorithms (Porter2 for English).
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer validates the language against the Snowball stemmers.
func NewSnowballStemmer(language string) (*SnowballStemmer, error) {
	language = strings.ToLower(language)
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, fmt.Errorf("stemmer %q: %w", language, internalerr.ErrInvalidConfig)
	}
	return &SnowballStemmer{language: language}, nil
}

// Stem implements Stemmer. Stopwords are stemmed too; the input is already
// stopword-free.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return word
	}
	return stemmed
}
