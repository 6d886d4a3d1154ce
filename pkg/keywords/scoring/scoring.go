package scoring

import (
	"github.com/cognicore/keywords/pkg/keywords/metrics"
)

// Artifact keys written by the scorers.
const (
	KeyWordCount        = "word_count"
	KeyLength           = "length"
	KeyTermFrequency    = "term_frequency"
	KeyDocCounter       = "doc_counter"
	KeyDocumentFreq     = "document_frequency"
	KeyInverseDocFreq   = "inverse_document_frequency"
	KeyTFIDF            = "tf_idf"
	KeyStemsPerSentence = "stems_per_sentence"
	KeyStems            = "stems"
	KeyGraph            = "graph"
	KeyScores           = "scores"
)

// Keys read from the preprocessing stages.
const (
	keyWords            = "words"
	keyWordsPerSentence = "words_per_sentence"
	keyUniqueWords      = "unique_words"
)

// Scorer turns a preprocessed document into a term score table. Scorers read
// earlier stages from the store and record their own artifacts in it.
type Scorer interface {
	Score(store *metrics.Store) (*metrics.ScoreTable, error)
}
