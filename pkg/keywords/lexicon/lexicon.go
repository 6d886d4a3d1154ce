package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed irregular.yaml
var defaultYAML []byte

// Lexicon stores the irregular side of lemmatization for one language:
// - Irregular forms: inflections no suffix rule can undo (went → go, mice → mouse)
// - Invariants: words that look inflected but are already base forms (news, glass)
//
// Entries are grouped by coarse category ("noun", "verb", "adjective",
// "adverb"), so "better" can be "good" as an adjective and "well" as an adverb.
type Lexicon struct {
	// category -> inflected form -> lemma
	// Example: "verb" -> {"went": "go", "gone": "go"}
	forms map[string]map[string]string

	// category -> lemma -> all forms (lemma first)
	// Example: "verb" -> {"go": ["go", "went", "gone", "goes"]}
	lemmas map[string]map[string][]string

	// category -> words returned unchanged
	invariants map[string]map[string]struct{}
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		forms:      make(map[string]map[string]string),
		lemmas:     make(map[string]map[string][]string),
		invariants: make(map[string]map[string]struct{}),
	}
}

// document mirrors the YAML layout.
//
// Expected format:
//
//	irregular:
//	  verb:
//	    - lemma: go
//	      forms: [went, gone, goes]
//	  noun:
//	    - lemma: mouse
//	      forms: [mice]
//	invariant:
//	  noun: [news, series, glass]
type document struct {
	Irregular map[string][]struct {
		Lemma string   `yaml:"lemma"`
		Forms []string `yaml:"forms"`
	} `yaml:"irregular"`
	Invariant map[string][]string `yaml:"invariant"`
}

// Parse builds a lexicon from YAML bytes. All entries are lowercased.
func Parse(data []byte) (*Lexicon, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := New()
	for category, entries := range doc.Irregular {
		for _, entry := range entries {
			if strings.TrimSpace(entry.Lemma) == "" {
				return nil, fmt.Errorf("parse lexicon: empty lemma in category %q", category)
			}
			lex.AddForms(category, entry.Lemma, entry.Forms)
		}
	}
	for category, words := range doc.Invariant {
		for _, w := range words {
			lex.AddInvariant(category, w)
		}
	}
	return lex, nil
}

// LoadFromYAML loads a lexicon from a YAML file.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default returns the built-in English lexicon.
func Default() *Lexicon {
	lex, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return lex
}

// AddForms registers irregular forms of a lemma. The lemma is always stored as
// its own first form. Re-adding a lemma replaces its previous forms.
func (l *Lexicon) AddForms(category, lemma string, forms []string) {
	category = strings.ToLower(category)
	lemma = strings.ToLower(lemma)

	if l.forms[category] == nil {
		l.forms[category] = make(map[string]string)
		l.lemmas[category] = make(map[string][]string)
	}

	if old, exists := l.lemmas[category][lemma]; exists {
		for _, f := range old {
			delete(l.forms[category], f)
		}
	}

	all := make([]string, 0, len(forms)+1)
	seen := map[string]bool{lemma: true}
	all = append(all, lemma)
	for _, f := range forms {
		f = strings.ToLower(f)
		if !seen[f] {
			all = append(all, f)
			seen[f] = true
		}
	}

	l.lemmas[category][lemma] = all
	for _, f := range all {
		l.forms[category][f] = lemma
	}
}

// AddInvariant marks a word as already being a base form.
func (l *Lexicon) AddInvariant(category, word string) {
	category = strings.ToLower(category)
	if l.invariants[category] == nil {
		l.invariants[category] = make(map[string]struct{})
	}
	l.invariants[category][strings.ToLower(word)] = struct{}{}
}

// Merge copies every entry of other into l. Lemmas present in both take the
// forms from other.
func (l *Lexicon) Merge(other *Lexicon) {
	for category, lemmas := range other.lemmas {
		for lemma, forms := range lemmas {
			l.AddForms(category, lemma, forms[1:])
		}
	}
	for category, words := range other.invariants {
		for w := range words {
			l.AddInvariant(category, w)
		}
	}
}

// Lookup returns the lemma of an irregular form or invariant word.
// The word is matched case-insensitively; ok is false when the lexicon has no
// entry and suffix rules should be tried instead.
//
// Examples:
//   - Lookup("verb", "went") -> "go", true
//   - Lookup("noun", "news") -> "news", true
//   - Lookup("noun", "cats") -> "", false
func (l *Lexicon) Lookup(category, word string) (string, bool) {
	category = strings.ToLower(category)
	word = strings.ToLower(word)
	if lemma, ok := l.forms[category][word]; ok {
		return lemma, true
	}
	if _, ok := l.invariants[category][word]; ok {
		return word, true
	}
	return "", false
}

// Forms returns all registered forms of a lemma, lemma first.
// Unknown lemmas return a slice containing only the lemma.
func (l *Lexicon) Forms(category, lemma string) []string {
	lemma = strings.ToLower(lemma)
	if forms, ok := l.lemmas[strings.ToLower(category)][lemma]; ok {
		return forms
	}
	return []string{lemma}
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	var s Stats
	for _, byLemma := range l.lemmas {
		s.Lemmas += len(byLemma)
		for _, forms := range byLemma {
			s.Forms += len(forms)
		}
	}
	for _, words := range l.invariants {
		s.Invariants += len(words)
	}
	s.Categories = len(l.lemmas)
	return s
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	Categories int // Number of categories with irregular entries
	Lemmas     int // Number of lemmas with irregular forms
	Forms      int // Total forms, lemmas included
	Invariants int // Words that are returned unchanged
}
