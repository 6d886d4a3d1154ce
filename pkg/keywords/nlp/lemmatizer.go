package nlp

import (
	"strings"

	"github.com/cognicore/keywords/pkg/keywords/lexicon"
)

// Lemmatizer reduces tagged words to dictionary base forms.
type Lemmatizer interface {
	Lemmatize(sentences [][]TaggedWord) [][]string
}

// RuleLemmatizer reduces words with an irregular-form lexicon first and
// detachment rules second. The fine tag selects the rule set, so only words
// tagged as inflected (NNS, VBD, JJR, ...) lose a suffix.
//
// Words outside the four open classes are reduced as nouns: a noun lexicon
// lookup, then the plural rules. Proper nouns keep their case.
type RuleLemmatizer struct {
	lex *lexicon.Lexicon
}

// NewRuleLemmatizer creates a lemmatizer. A nil lexicon uses lexicon.Default().
func NewRuleLemmatizer(lex *lexicon.Lexicon) *RuleLemmatizer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &RuleLemmatizer{lex: lex}
}

// Lemmatize implements Lemmatizer.
func (l *RuleLemmatizer) Lemmatize(sentences [][]TaggedWord) [][]string {
	result := make([][]string, len(sentences))
	for i, tagged := range sentences {
		lemmas := make([]string, len(tagged))
		for j, tw := range tagged {
			lemmas[j] = l.Lemma(tw)
		}
		result[i] = lemmas
	}
	return result
}

// Lemma reduces a single tagged word.
func (l *RuleLemmatizer) Lemma(tw TaggedWord) string {
	if tw.Tag == "NNP" {
		return tw.Word
	}
	if tw.Tag == "NNPS" {
		return nounRules(tw.Word)
	}

	word := strings.ToLower(tw.Word)
	if tw.Category == Other {
		if lemma, ok := l.lex.Lookup(Noun.String(), word); ok {
			return lemma
		}
		return nounRules(word)
	}

	if lemma, ok := l.lex.Lookup(tw.Category.String(), word); ok {
		return lemma
	}

	switch tw.Tag {
	case "NNS":
		return nounRules(word)
	case "VBZ":
		return verbPresentRules(word)
	case "VBD", "VBN":
		return verbPastRules(word)
	case "VBG":
		return verbGerundRules(word)
	case "JJR", "RBR":
		return comparativeRules(word, "er")
	case "JJS", "RBS":
		return comparativeRules(word, "est")
	}
	return word
}

func nounRules(w string) string {
	lower := strings.ToLower(w)
	switch {
	case len(lower) <= 3:
		return w
	case hasAnySuffix(lower, "ss", "us", "is"):
		return w
	case len(lower) > 4 && strings.HasSuffix(lower, "ies"):
		return w[:len(w)-3] + "y"
	case hasAnySuffix(lower, "sses", "ches", "shes", "xes", "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(lower, "men"):
		return w[:len(w)-3] + "man"
	case strings.HasSuffix(lower, "s"):
		return w[:len(w)-1]
	}
	return w
}

func verbPresentRules(w string) string {
	switch {
	case len(w) <= 3:
		return w
	case hasAnySuffix(w, "ss", "us"):
		return w
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case hasAnySuffix(w, "sses", "ches", "shes", "xes", "zes", "oes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func verbPastRules(w string) string {
	switch {
	case len(w) <= 3 || !strings.HasSuffix(w, "ed"):
		return w
	case len(w) > 4 && strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "eed"):
		return w[:len(w)-1]
	}
	return restoreStem(w[:len(w)-2])
}

func verbGerundRules(w string) string {
	if len(w) <= 4 || !strings.HasSuffix(w, "ing") {
		return w
	}
	return restoreStem(w[:len(w)-3])
}

func comparativeRules(w, suffix string) string {
	if len(w) <= len(suffix)+2 || !strings.HasSuffix(w, suffix) {
		return w
	}
	stem := w[:len(w)-len(suffix)]
	if strings.HasSuffix(stem, "i") {
		return stem[:len(stem)-1] + "y"
	}
	return restoreStem(stem)
}

// restoreStem undoes consonant doubling (stopp → stop) and restores a silent
// e on short consonant-vowel-consonant stems (hop → hope).
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && isConsonant(stem, n-1) && !hasAnySuffix(stem, "ll", "ss", "zz", "ff") {
		return stem[:n-1]
	}
	if hasAnySuffix(stem, "v", "iz", "bl", "dg", "rs", "rc", "nc") || (n <= 4 && strings.HasSuffix(stem, "us")) {
		return stem + "e"
	}
	if n >= 3 && n <= 4 && isConsonant(stem, n-3) && !isConsonant(stem, n-2) && isConsonant(stem, n-1) &&
		!strings.ContainsAny(stem[n-1:], "wxy") {
		return stem + "e"
	}
	return stem
}

func isConsonant(s string, i int) bool {
	switch s[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !isConsonant(s, i-1)
	}
	return true
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
