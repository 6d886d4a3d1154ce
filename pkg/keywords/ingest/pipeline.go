package ingest

import (
	"github.com/cognicore/keywords/pkg/keywords/metrics"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
	"github.com/cognicore/keywords/pkg/keywords/stoplist"
)

// Artifact keys written by the pipeline.
const (
	KeyParagraphs            = "paragraphs"
	KeySentencesPerParagraph = "sentences_per_paragraph"
	KeySentences             = "sentences"
	KeyWordsPerSentence      = "words_per_sentence"
	KeyWords                 = "words"
	KeyTaggedWords           = "tagged_words"
	KeyLemmasPerSentence     = "lemmas_per_sentence"
	KeyLemmas                = "lemmas"
	KeyUniqueWords           = "unique_words"
)

// Pipeline orchestrates preprocessing:
// text → paragraphs → sentences → words → tags → lemmas → stopword filter
type Pipeline struct {
	backend nlp.Backend
	stops   *stoplist.Manager
}

// NewPipeline creates a preprocessing pipeline with the given components
func NewPipeline(backend nlp.Backend, stops *stoplist.Manager) *Pipeline {
	return &Pipeline{
		backend: backend,
		stops:   stops,
	}
}

// ProcessedDoc is the outcome of preprocessing one document.
type ProcessedDoc struct {
	Words    []string   // raw tokens
	Tagged   [][]nlp.TaggedWord
	Lemmas   [][]string // per sentence
	Filtered [][]string // lemmas per sentence without stopwords
}

// Process runs the document held by store through every preprocessing step
// and records each step's artifacts in the tokens, pos, lemma and
// stop_word_free stages.
func (p *Pipeline) Process(store *metrics.Store) (ProcessedDoc, error) {
	// 1. Segment
	paragraphs, err := TextToParagraphs(store.Text())
	if err != nil {
		return ProcessedDoc{}, err
	}
	perParagraph := ParagraphsToSentences(paragraphs)
	sentences := Flatten(perParagraph)
	perSentence := SentencesToWords(sentences)
	words := Flatten(perSentence)

	// 2. Tag
	tagged := p.backend.Tag(perSentence)

	// 3. Lemmatize
	lemmas := p.backend.Lemmatize(tagged)

	// 4. Filter stopwords
	filtered := p.stops.Filter(lemmas)
	flatFiltered := Flatten(filtered)

	w := stageWriter{store: store}
	w.sequence(metrics.StageTokens, KeyParagraphs, paragraphs)
	w.nested(metrics.StageTokens, KeySentencesPerParagraph, perParagraph)
	w.sequence(metrics.StageTokens, KeySentences, sentences)
	w.nested(metrics.StageTokens, KeyWordsPerSentence, perSentence)
	w.sequence(metrics.StageTokens, KeyWords, words)
	w.tagged(metrics.StagePOS, KeyTaggedWords, tagged)
	w.nested(metrics.StageLemma, KeyLemmasPerSentence, lemmas)
	w.sequence(metrics.StageLemma, KeyLemmas, Flatten(lemmas))
	w.nested(metrics.StageStopWordFree, KeyWordsPerSentence, filtered)
	w.sequence(metrics.StageStopWordFree, KeyWords, flatFiltered)
	w.sequence(metrics.StageStopWordFree, KeyUniqueWords, Dedupe(flatFiltered))
	if w.err != nil {
		return ProcessedDoc{}, w.err
	}

	return ProcessedDoc{
		Words:    words,
		Tagged:   tagged,
		Lemmas:   lemmas,
		Filtered: filtered,
	}, nil
}

// stageWriter stops writing after the first failure.
type stageWriter struct {
	store *metrics.Store
	err   error
}

func (w *stageWriter) sequence(stage metrics.Stage, key string, v []string) {
	if w.err == nil {
		w.err = w.store.PutSequence(stage, key, v)
	}
}

func (w *stageWriter) nested(stage metrics.Stage, key string, v [][]string) {
	if w.err == nil {
		w.err = w.store.PutNested(stage, key, v)
	}
}

func (w *stageWriter) tagged(stage metrics.Stage, key string, v [][]nlp.TaggedWord) {
	if w.err == nil {
		w.err = w.store.PutTagged(stage, key, v)
	}
}
