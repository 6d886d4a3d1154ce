package keywords

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
)

const catText = "the cat sat on the mat. the cat ran fast."

func newTestExtractor(t *testing.T, workers int) *Extractor {
	t.Helper()
	backend, err := nlp.NewEnglish(nlp.TaggerRules, nil)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	ex, err := New(Options{Backend: backend, Workers: workers})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ex
}

func TestParseMethod(t *testing.T) {
	for _, name := range []string{"wf", "TFIDF", " pr "} {
		if _, err := ParseMethod(name); err != nil {
			t.Errorf("ParseMethod(%q): %v", name, err)
		}
	}
	for _, name := range []string{"", "full", "textrank"} {
		if _, err := ParseMethod(name); !errors.Is(err, internalerr.ErrUnsupportedMethod) {
			t.Errorf("ParseMethod(%q): expected ErrUnsupportedMethod, got %v", name, err)
		}
	}
	if len(Methods()) != 3 {
		t.Errorf("expected 3 methods, got %v", Methods())
	}
}

func TestExtractWordFrequency(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne(catText, MethodWordFrequency, 5)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	want := []string{"cat", "sit", "mat", "run", "fast"}
	if !reflect.DeepEqual(env.Keywords, want) {
		t.Errorf("keywords = %v, want %v", env.Keywords, want)
	}
	if env.Text != catText || env.Method != MethodWordFrequency {
		t.Errorf("envelope does not echo its input: %+v", env)
	}
}

func TestExtractDefaultBackend(t *testing.T) {
	ex, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"cat", "sit", "mat", "run", "fast"}
	for _, m := range Methods() {
		env, err := ex.ExtractOne(catText, m, 5)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if !reflect.DeepEqual(env.Keywords, want) {
			t.Errorf("%s: keywords = %v, want %v", m, env.Keywords, want)
		}
	}

	long := strings.Repeat("Graph ranking finds the words that hold a text together. ", 200)
	env, err := ex.ExtractOne(long, MethodPageRank, 5)
	if err != nil {
		t.Fatalf("long document: %v", err)
	}
	if len(env.Keywords) != 5 {
		t.Errorf("expected 5 keywords, got %v", env.Keywords)
	}
}

func TestExtractTFIDFKeepsFirstAppearance(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne(catText, MethodTFIDF, 5)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	want := []string{"cat", "sit", "mat", "run", "fast"}
	if !reflect.DeepEqual(env.Keywords, want) {
		t.Errorf("keywords = %v, want %v", env.Keywords, want)
	}
}

func TestExtractPageRank(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne(catText, MethodPageRank, 5)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	want := []string{"cat", "sit", "mat", "run", "fast"}
	if !reflect.DeepEqual(env.Keywords, want) {
		t.Errorf("keywords = %v, want %v", env.Keywords, want)
	}
}

func TestExtractPageRankSingleWord(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne("Cats", MethodPageRank, 10)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if !reflect.DeepEqual(env.Keywords, []string{"cat"}) {
		t.Errorf("keywords = %v, want [cat]", env.Keywords)
	}
}

func TestExtractClampsToDistinctTerms(t *testing.T) {
	ex := newTestExtractor(t, 1)
	for _, m := range Methods() {
		env, err := ex.ExtractOne(catText, m, 50)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if len(env.Keywords) != 5 {
			t.Errorf("%s: expected 5 keywords, got %v", m, env.Keywords)
		}

		env, err = ex.ExtractOne(catText, m, 2)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if len(env.Keywords) != 2 || env.Keywords[0] != "cat" {
			t.Errorf("%s: expected cat first of 2, got %v", m, env.Keywords)
		}
	}
}

func TestExtractOnlyStopwords(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne("It is what it is.", MethodPageRank, 10)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if env.Keywords == nil || len(env.Keywords) != 0 {
		t.Errorf("expected an empty keyword list, got %#v", env.Keywords)
	}
}

func TestExtractErrors(t *testing.T) {
	ex := newTestExtractor(t, 1)

	if _, err := ex.ExtractOne("   ", MethodWordFrequency, 5); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty text: expected ErrInvalidInput, got %v", err)
	}
	if _, err := ex.ExtractOne(catText, Method("full"), 5); !errors.Is(err, internalerr.ErrUnsupportedMethod) {
		t.Errorf("unknown method: expected ErrUnsupportedMethod, got %v", err)
	}
	if _, err := ex.ExtractOne(catText, MethodTFIDF, -1); !errors.Is(err, internalerr.ErrOutOfRange) {
		t.Errorf("negative max: expected ErrOutOfRange, got %v", err)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "Graphs rank words.\nWords that share sentences link up. Linked words rank higher!"
	for _, m := range Methods() {
		var first []byte
		for i := 0; i < 3; i++ {
			env, err := newTestExtractor(t, 1).ExtractOne(text, m, 4)
			if err != nil {
				t.Fatal(err)
			}
			data, err := json.Marshal(env)
			if err != nil {
				t.Fatal(err)
			}
			if first == nil {
				first = data
			} else if !bytes.Equal(first, data) {
				t.Fatalf("%s: run %d differs:\n%s\n%s", m, i, first, data)
			}
		}
	}
}

func TestEnvelopeJSON(t *testing.T) {
	env, err := newTestExtractor(t, 1).ExtractOne(catText, MethodWordFrequency, 2)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}

	prefix := `{"text":"` + catText + `","extraction_method":"wf","keywords":["cat","sit"],"file":{"text":`
	if !strings.HasPrefix(string(data), prefix) {
		t.Errorf("unexpected envelope JSON: %s", data)
	}
	if !strings.Contains(string(data), `"tf_idf":null`) {
		t.Errorf("unused stages should encode as null: %s", data)
	}
}

func TestExtractManyMatchesExtractOne(t *testing.T) {
	docs := map[string]string{
		"a.txt":     catText,
		"b/c.txt":   "Dogs bark loudly. Cats ignore dogs.",
		"b/d/e.txt": "Cats",
	}

	for _, workers := range []int{1, 4} {
		ex := newTestExtractor(t, workers)
		got, err := ex.ExtractMany(context.Background(), docs, MethodPageRank, 3)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(docs) {
			t.Fatalf("workers=%d: expected %d results, got %d", workers, len(docs), len(got))
		}
		for path, text := range docs {
			direct, err := ex.ExtractOne(text, MethodPageRank, 3)
			if err != nil {
				t.Fatal(err)
			}
			a, _ := json.Marshal(got[path])
			b, _ := json.Marshal(direct)
			if !bytes.Equal(a, b) {
				t.Errorf("workers=%d %s: batch and direct differ:\n%s\n%s", workers, path, a, b)
			}
		}
	}
}

func TestExtractManyFailsFast(t *testing.T) {
	docs := map[string]string{"ok.txt": catText, "empty.txt": ""}
	_, err := newTestExtractor(t, 2).ExtractMany(context.Background(), docs, MethodWordFrequency, 5)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "empty.txt") {
		t.Errorf("error should name the failing path: %v", err)
	}
}

func TestExtractManyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor(t, 1).ExtractMany(ctx, map[string]string{"a": catText}, MethodWordFrequency, 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExtractManyUnknownMethod(t *testing.T) {
	_, err := newTestExtractor(t, 1).ExtractMany(context.Background(), map[string]string{"a": catText}, Method("x"), 5)
	if !errors.Is(err, internalerr.ErrUnsupportedMethod) {
		t.Errorf("expected ErrUnsupportedMethod, got %v", err)
	}
}

func TestExtractLogsExtractionID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	backend, err := nlp.NewEnglish(nlp.TaggerRules, nil)
	if err != nil {
		t.Fatal(err)
	}
	ex, err := New(Options{Backend: backend, Logger: zap.New(core)})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ex.ExtractOne(catText, MethodTFIDF, 3); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("extracted").All()
	if len(entries) != 1 {
		t.Fatalf("expected one extracted entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if id, _ := fields["extraction_id"].(string); len(id) != 26 {
		t.Errorf("extraction_id should be a ULID, got %v", fields["extraction_id"])
	}
	if fields["method"] != "tfidf" {
		t.Errorf("method field = %v", fields["method"])
	}
}
