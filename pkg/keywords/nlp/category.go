package nlp

import "encoding/json"

// Category is the coarse grammatical class a Penn Treebank tag collapses to.
type Category int

const (
	Other Category = iota
	Noun
	Adjective
	Adverb
	Verb
)

// categoryByTag is the fixed collapse table. Tags not listed are Other.
var categoryByTag = map[string]Category{
	// Nouns
	"NN": Noun, "NNS": Noun, "NNP": Noun, "NNPS": Noun,
	// Adjectives
	"JJ": Adjective, "JJR": Adjective, "JJS": Adjective,
	// Adverbs
	"RB": Adverb, "RBR": Adverb, "RBS": Adverb,
	// Verbs
	"VB": Verb, "VBD": Verb, "VBG": Verb, "VBN": Verb, "VBP": Verb, "VBZ": Verb,
}

// CategoryOf collapses a Penn Treebank tag.
func CategoryOf(tag string) Category {
	return categoryByTag[tag]
}

// String returns the lexicon key of the category.
func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	case Verb:
		return "verb"
	default:
		return "other"
	}
}

// Code returns the one-letter WordNet code (n, a, r, v), or "" for Other.
func (c Category) Code() string {
	switch c {
	case Noun:
		return "n"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	case Verb:
		return "v"
	default:
		return ""
	}
}

// TaggedWord is a surface word with its fine tag and coarse category.
type TaggedWord struct {
	Word     string
	Tag      string
	Category Category
}

// NewTaggedWord tags a word, deriving the category from the tag.
func NewTaggedWord(word, tag string) TaggedWord {
	return TaggedWord{Word: word, Tag: tag, Category: CategoryOf(tag)}
}

// MarshalJSON encodes the pair as [word, label] where label is the category
// code for open-class words and the raw tag otherwise.
func (tw TaggedWord) MarshalJSON() ([]byte, error) {
	label := tw.Category.Code()
	if label == "" {
		label = tw.Tag
	}
	return json.Marshal([2]string{tw.Word, label})
}
