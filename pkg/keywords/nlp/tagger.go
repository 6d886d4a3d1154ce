package nlp

import (
	"strings"
	"sync"
	"unicode"

	"github.com/jdkato/prose/v2"

	"github.com/cognicore/keywords/pkg/keywords/lexicon"
)

// Tagger assigns a Penn Treebank tag to each word in sentence context.
// Output keeps sentence grouping and word order.
type Tagger interface {
	Tag(sentences [][]string) [][]TaggedWord
}

// closedClass maps function words to their usual tag.
var closedClass = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT", "these": "DT",
	"those": "DT", "every": "DT", "each": "DT", "some": "DT", "any": "DT",
	"no": "DT", "all": "DT", "both": "DT", "another": "DT",

	"on": "IN", "in": "IN", "at": "IN", "of": "IN", "for": "IN", "with": "IN",
	"by": "IN", "from": "IN", "about": "IN", "into": "IN", "over": "IN",
	"under": "IN", "after": "IN", "before": "IN", "between": "IN",
	"through": "IN", "during": "IN", "without": "IN", "within": "IN",
	"upon": "IN", "since": "IN", "until": "IN", "against": "IN", "among": "IN",
	"because": "IN", "if": "IN", "while": "IN", "than": "IN", "as": "IN",
	"like": "IN", "though": "IN", "although": "IN", "whether": "IN",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",

	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP",
	"them": "PRP", "myself": "PRP", "itself": "PRP", "themselves": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$", "our": "PRP$",
	"their": "PRP$", "her": "PRP$",

	"can": "MD", "could": "MD", "will": "MD", "would": "MD", "shall": "MD",
	"should": "MD", "may": "MD", "might": "MD", "must": "MD",

	"to": "TO", "there": "EX",
	"which": "WDT", "who": "WP", "whom": "WP", "what": "WP", "whose": "WP$",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",

	"not": "RB", "very": "RB", "too": "RB", "also": "RB", "just": "RB",
	"only": "RB", "never": "RB", "always": "RB", "often": "RB", "here": "RB",
	"now": "RB", "then": "RB", "so": "RB", "again": "RB", "still": "RB",

	"is": "VBZ", "has": "VBZ", "does": "VBZ",
	"are": "VBP", "am": "VBP", "have": "VBP", "do": "VBP",
	"was": "VBD", "were": "VBD", "had": "VBD", "did": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",
}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ical", "ic", "al"}

// RuleTagger tags with a closed-class table, irregular verb forms from a
// lexicon and suffix heuristics. It is deterministic and needs no model.
type RuleTagger struct {
	lex *lexicon.Lexicon // optional: irregular past forms
}

// NewRuleTagger creates a rule tagger. lex may be nil.
func NewRuleTagger(lex *lexicon.Lexicon) *RuleTagger {
	return &RuleTagger{lex: lex}
}

// Tag implements Tagger.
func (t *RuleTagger) Tag(sentences [][]string) [][]TaggedWord {
	result := make([][]TaggedWord, len(sentences))
	for i, words := range sentences {
		tagged := make([]TaggedWord, len(words))
		prev := ""
		for j, w := range words {
			tag := t.tagWord(w, j, prev)
			tagged[j] = NewTaggedWord(w, tag)
			prev = tag
		}
		result[i] = tagged
	}
	return result
}

func (t *RuleTagger) tagWord(word string, pos int, prev string) string {
	lower := strings.ToLower(word)

	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if isNumber(lower) {
		return "CD"
	}

	// Base form after "to" or a modal
	if prev == "TO" || prev == "MD" {
		return "VB"
	}

	if t.lex != nil {
		if lemma, ok := t.lex.Lookup("verb", lower); ok && lemma != lower {
			switch {
			case strings.HasSuffix(lower, "ing"):
				return "VBG"
			case strings.HasSuffix(lower, "s"):
				return "VBZ"
			case strings.HasSuffix(lower, "en") || strings.HasSuffix(lower, "wn"):
				return "VBN"
			default:
				return "VBD"
			}
		}
	}

	if pos > 0 && startsUpper(word) {
		if strings.HasSuffix(lower, "s") && len(lower) > 3 && !strings.HasSuffix(lower, "ss") {
			return "NNPS"
		}
		return "NNP"
	}

	switch {
	case len(lower) > 4 && strings.HasSuffix(lower, "ing"):
		return "VBG"
	case len(lower) > 3 && strings.HasSuffix(lower, "ed"):
		if prev == "VBZ" || prev == "VBP" || prev == "VBD" {
			return "VBN"
		}
		return "VBD"
	case len(lower) > 3 && strings.HasSuffix(lower, "ly"):
		return "RB"
	case len(lower) > 5 && strings.HasSuffix(lower, "est"):
		return "JJS"
	}
	for _, suffix := range adjectiveSuffixes {
		if len(lower) > len(suffix)+2 && strings.HasSuffix(lower, suffix) {
			return "JJ"
		}
	}

	plural := len(lower) > 3 && strings.HasSuffix(lower, "s") &&
		!strings.HasSuffix(lower, "ss") && !strings.HasSuffix(lower, "us") && !strings.HasSuffix(lower, "is")
	if plural {
		if prev == "PRP" || prev == "WP" {
			return "VBZ"
		}
		return "NNS"
	}
	if prev == "PRP" {
		return "VBP"
	}
	return "NN"
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// PerceptronTagger tags with the averaged-perceptron model shipped with prose.
// When the model's own tokenization of a sentence does not line up with the
// input words, that sentence is tagged by the fallback tagger instead.
type PerceptronTagger struct {
	// mu guards model, which is loaded on first use and shared afterwards.
	mu       sync.Mutex
	model    *prose.Model
	fallback Tagger
}

// NewPerceptronTagger creates a perceptron tagger. fallback may be nil, in
// which case a RuleTagger without lexicon is used.
func NewPerceptronTagger(fallback Tagger) *PerceptronTagger {
	if fallback == nil {
		fallback = NewRuleTagger(nil)
	}
	return &PerceptronTagger{fallback: fallback}
}

// Tag implements Tagger.
func (t *PerceptronTagger) Tag(sentences [][]string) [][]TaggedWord {
	result := make([][]TaggedWord, len(sentences))
	for i, words := range sentences {
		if len(words) == 0 {
			result[i] = []TaggedWord{}
			continue
		}
		tagged, ok := t.tagSentence(words)
		if !ok {
			tagged = t.fallback.Tag([][]string{words})[0]
		}
		result[i] = tagged
	}
	return result
}

func (t *PerceptronTagger) tagSentence(words []string) ([]TaggedWord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	}
	if t.model != nil {
		opts = append(opts, prose.UsingModel(t.model))
	}
	doc, err := prose.NewDocument(strings.Join(words, " "), opts...)
	if err != nil {
		return nil, false
	}
	if t.model == nil {
		t.model = doc.Model
	}

	tokens := doc.Tokens()
	if len(tokens) != len(words) {
		return nil, false
	}
	tagged := make([]TaggedWord, len(words))
	for i, tok := range tokens {
		if tok.Text != words[i] {
			return nil, false
		}
		tagged[i] = NewTaggedWord(words[i], tok.Tag)
	}
	return tagged, true
}
