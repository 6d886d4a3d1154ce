package scoring

import (
	"math"

	"github.com/cognicore/keywords/pkg/keywords/metrics"
)

// DefaultDocCounter is the corpus size assumed for a lone document.
const DefaultDocCounter = 1

// TFIDF weights terms by inverse document frequency on top of Frequency.
//
//	idf(t)   = 1 + ln(docCounter / df(t))
//	score(t) = |term frequency table| * idf(t)
//
// Only one document is ever seen, so df(t) is 1 for every present term. With
// the default docCounter of 1 every term scores the vocabulary size and
// ranking falls back to first-appearance order.
type TFIDF struct {
	DocCounter int
}

// NewTFIDF creates a scorer for a corpus of docCounter documents. Values
// below 1 use DefaultDocCounter.
func NewTFIDF(docCounter int) *TFIDF {
	if docCounter < 1 {
		docCounter = DefaultDocCounter
	}
	return &TFIDF{DocCounter: docCounter}
}

// Score implements Scorer. Frequency runs first unless it already has.
func (s *TFIDF) Score(store *metrics.Store) (*metrics.ScoreTable, error) {
	if store.Has(metrics.StageTFIDF, KeyTFIDF) {
		return store.Scores(metrics.StageTFIDF, KeyTFIDF)
	}

	tf, err := Frequency{}.Score(store)
	if err != nil {
		return nil, err
	}

	docCounter := s.DocCounter
	if docCounter < 1 {
		docCounter = DefaultDocCounter
	}

	df := metrics.NewCountTable()
	idf := metrics.NewScoreTable()
	scores := metrics.NewScoreTable()
	vocabulary := float64(tf.Len())

	for _, term := range tf.Keys() {
		n := 1
		df.Set(term, n)
		weight := 1 + math.Log(float64(docCounter)/float64(n))
		idf.Set(term, weight)
		scores.Set(term, vocabulary*weight)
	}

	if err := store.PutScalar(metrics.StageTFIDF, KeyDocCounter, float64(docCounter)); err != nil {
		return nil, err
	}
	if err := store.PutCounts(metrics.StageTFIDF, KeyDocumentFreq, df); err != nil {
		return nil, err
	}
	if err := store.PutScores(metrics.StageTFIDF, KeyInverseDocFreq, idf); err != nil {
		return nil, err
	}
	if err := store.PutScores(metrics.StageTFIDF, KeyTFIDF, scores); err != nil {
		return nil, err
	}
	return scores, nil
}
