package nlp

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/lexicon"
)

func TestCategoryOf(t *testing.T) {
	tests := map[string]Category{
		"NN": Noun, "NNS": Noun, "NNP": Noun, "NNPS": Noun,
		"JJ": Adjective, "JJR": Adjective, "JJS": Adjective,
		"RB": Adverb, "RBR": Adverb, "RBS": Adverb,
		"VB": Verb, "VBD": Verb, "VBG": Verb, "VBN": Verb, "VBP": Verb, "VBZ": Verb,
		"DT": Other, "IN": Other, "CD": Other, "": Other,
	}
	for tag, want := range tests {
		if got := CategoryOf(tag); got != want {
			t.Errorf("CategoryOf(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestTaggedWordJSON(t *testing.T) {
	data, err := json.Marshal([]TaggedWord{NewTaggedWord("cat", "NN"), NewTaggedWord("the", "DT")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[["cat","n"],["the","DT"]]` {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestRuleTaggerKeepsShape(t *testing.T) {
	tagger := NewRuleTagger(lexicon.Default())
	in := [][]string{{"the", "cat", "sat"}, {}, {"Dogs", "bark"}}
	out := tagger.Tag(in)

	if len(out) != len(in) {
		t.Fatalf("expected %d sentences, got %d", len(in), len(out))
	}
	for i := range in {
		if len(out[i]) != len(in[i]) {
			t.Errorf("sentence %d: expected %d words, got %d", i, len(in[i]), len(out[i]))
		}
		for j, tw := range out[i] {
			if tw.Word != in[i][j] {
				t.Errorf("word order changed: %q vs %q", tw.Word, in[i][j])
			}
		}
	}
}

func TestRuleTaggerTags(t *testing.T) {
	tagger := NewRuleTagger(lexicon.Default())
	out := tagger.Tag([][]string{{"the", "cat", "sat", "on", "the", "mat", "quickly"}})[0]

	want := []string{"DT", "NN", "VBD", "IN", "DT", "NN", "RB"}
	for i, tw := range out {
		if tw.Tag != want[i] {
			t.Errorf("%q tagged %s, want %s", tw.Word, tw.Tag, want[i])
		}
	}
}

func TestRuleTaggerContext(t *testing.T) {
	tagger := NewRuleTagger(nil)
	out := tagger.Tag([][]string{{"we", "want", "to", "build", "Berlin", "models"}})[0]

	tags := make([]string, len(out))
	for i, tw := range out {
		tags[i] = tw.Tag
	}
	want := []string{"PRP", "VBP", "TO", "VB", "NNP", "NNS"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestRuleLemmatizer(t *testing.T) {
	lem := NewRuleLemmatizer(nil)

	tests := []struct {
		word, tag, want string
	}{
		{"cats", "NNS", "cat"},
		{"boxes", "NNS", "box"},
		{"stories", "NNS", "story"},
		{"glass", "NNS", "glass"},
		{"children", "NNS", "child"},
		{"sat", "VBD", "sit"},
		{"ran", "VBD", "run"},
		{"walked", "VBD", "walk"},
		{"stopped", "VBD", "stop"},
		{"hoped", "VBD", "hope"},
		{"making", "VBG", "make"},
		{"reading", "VBG", "read"},
		{"watches", "VBZ", "watch"},
		{"bigger", "JJR", "big"},
		{"happiest", "JJS", "happy"},
		{"better", "JJR", "good"},
		{"better", "RBR", "well"},
		{"The", "DT", "the"},
		{"was", "VBD", "be"},
		{"Berlin", "NNP", "Berlin"},
		{"clever", "JJ", "clever"},
		{"cats", "FW", "cat"},
		{"boxes", "SYM", "box"},
		{"this", "DT", "this"},
	}
	for _, tt := range tests {
		got := lem.Lemma(NewTaggedWord(tt.word, tt.tag))
		if got != tt.want {
			t.Errorf("Lemma(%s/%s) = %q, want %q", tt.word, tt.tag, got, tt.want)
		}
	}
}

func TestLemmatizeKeepsGrouping(t *testing.T) {
	lem := NewRuleLemmatizer(nil)
	in := [][]TaggedWord{
		{NewTaggedWord("cats", "NNS"), NewTaggedWord("ran", "VBD")},
		{},
	}
	got := lem.Lemmatize(in)
	want := [][]string{{"cat", "run"}, {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lemmatize = %v, want %v", got, want)
	}
}

func TestSnowballStemmer(t *testing.T) {
	s, err := NewSnowballStemmer("english")
	if err != nil {
		t.Fatalf("NewSnowballStemmer: %v", err)
	}
	for word, want := range map[string]string{"cats": "cat", "running": "run", "cat": "cat"} {
		if got := s.Stem(word); got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestSnowballStemmerUnknownLanguage(t *testing.T) {
	_, err := NewSnowballStemmer("klingon")
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewEnglishRules(t *testing.T) {
	backend, err := NewEnglish(TaggerRules, nil)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	tagged := backend.Tag([][]string{{"the", "cats", "sat"}})
	lemmas := backend.Lemmatize(tagged)
	want := [][]string{{"the", "cat", "sit"}}
	if !reflect.DeepEqual(lemmas, want) {
		t.Errorf("lemmas = %v, want %v", lemmas, want)
	}
	if got := backend.Stem("connections"); got != "connect" {
		t.Errorf("Stem(connections) = %q", got)
	}
}

func TestPerceptronTaggerKeepsShape(t *testing.T) {
	tagger := NewPerceptronTagger(nil)
	in := [][]string{{"the", "cat", "sat", "on", "the", "mat"}, {}}
	out := tagger.Tag(in)

	if len(out) != 2 || len(out[0]) != 6 || len(out[1]) != 0 {
		t.Fatalf("unexpected shape: %v", out)
	}
	for i, tw := range out[0] {
		if tw.Word != in[0][i] {
			t.Errorf("word %d changed: %q", i, tw.Word)
		}
		if tw.Tag == "" {
			t.Errorf("word %q has no tag", tw.Word)
		}
	}
}

func TestPerceptronTaggerReusesModel(t *testing.T) {
	tagger := NewPerceptronTagger(nil)
	first := tagger.Tag([][]string{{"the", "cat", "sat"}, {"dogs", "bark", "loudly"}})
	model := tagger.model
	if model == nil {
		t.Fatal("model not kept after tagging")
	}

	second := tagger.Tag([][]string{{"the", "cat", "sat"}})
	if tagger.model != model {
		t.Error("model reloaded on a later call")
	}
	if !reflect.DeepEqual(first[0], second[0]) {
		t.Errorf("tags differ across calls: %v vs %v", first[0], second[0])
	}
}

func TestNewBackendLanguage(t *testing.T) {
	backend, err := NewBackend("Spanish", TaggerRules, nil)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if got := backend.Stem("cantando"); got != "cant" {
		t.Errorf("Stem(cantando) = %q, want cant", got)
	}
	if _, err := NewBackend("klingon", TaggerRules, nil); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseTaggerKind(t *testing.T) {
	for name, want := range map[string]TaggerKind{"": TaggerPerceptron, "perceptron": TaggerPerceptron, "Rules": TaggerRules} {
		got, err := ParseTaggerKind(name)
		if err != nil || got != want {
			t.Errorf("ParseTaggerKind(%q) = %q, %v", name, got, err)
		}
	}
	if _, err := ParseTaggerKind("hmm"); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
