package stoplist

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "english"

// Manager holds the stopword set for one language. Lookups are
// case-insensitive.
type Manager struct {
	language string
	stops    map[string]struct{}
}

// NewManager creates a manager from an explicit term list.
func NewManager(language string, terms []string) *Manager {
	m := &Manager{
		language: strings.ToLower(language),
		stops:    make(map[string]struct{}, len(terms)),
	}
	for _, t := range terms {
		m.Add(t)
	}
	return m
}

// ForLanguage returns the built-in set for a language. Only English ships
// built in; other languages need a stoplist file (see LoadFromYAML).
func ForLanguage(language string) (*Manager, error) {
	if language == "" {
		language = DefaultLanguage
	}
	terms, ok := builtin[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("stoplist for %q: %w: no built-in list", language, internalerr.ErrInvalidConfig)
	}
	return NewManager(language, terms), nil
}

// File is the YAML stoplist format.
type File struct {
	Language string   `yaml:"language"`
	Terms    []string `yaml:"terms"`
}

// LoadFromYAML reads a stoplist file. When the file names a language with a
// built-in list, its terms extend that list; otherwise they form the whole set.
func LoadFromYAML(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}
	if f.Language == "" {
		f.Language = DefaultLanguage
	}

	m := NewManager(f.Language, builtin[strings.ToLower(f.Language)])
	for _, t := range f.Terms {
		m.Add(t)
	}
	return m, nil
}

// Language returns the language identifier of the set.
func (m *Manager) Language() string {
	return m.language
}

// IsStop checks if a word is a stopword, ignoring case.
func (m *Manager) IsStop(word string) bool {
	_, ok := m.stops[strings.ToLower(word)]
	return ok
}

// Add adds a word to the stoplist
func (m *Manager) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	m.stops[word] = struct{}{}
}

// Remove removes a word from the stoplist
func (m *Manager) Remove(word string) {
	delete(m.stops, strings.ToLower(word))
}

// All returns all stopwords in sorted order.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Filter removes stopwords from each sentence. Sentence grouping is kept and
// sentences left without words stay in place as empty slices.
func (m *Manager) Filter(sentences [][]string) [][]string {
	result := make([][]string, len(sentences))
	for i, words := range sentences {
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if !m.IsStop(w) {
				kept = append(kept, w)
			}
		}
		result[i] = kept
	}
	return result
}
