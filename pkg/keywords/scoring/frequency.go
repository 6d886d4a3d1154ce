package scoring

import (
	"github.com/cognicore/keywords/pkg/keywords/metrics"
)

// Frequency scores each filtered lemma by its count divided by the number of
// raw tokens in the document. The denominator includes stopwords, so the
// scores sum to less than 1 whenever anything was filtered.
type Frequency struct{}

// Score implements Scorer. An existing word_frequency stage is reused.
func (Frequency) Score(store *metrics.Store) (*metrics.ScoreTable, error) {
	if store.Has(metrics.StageWordFrequency, KeyTermFrequency) {
		return store.Scores(metrics.StageWordFrequency, KeyTermFrequency)
	}

	filtered, err := store.Sequence(metrics.StageStopWordFree, keyWords)
	if err != nil {
		return nil, err
	}
	raw, err := store.Sequence(metrics.StageTokens, keyWords)
	if err != nil {
		return nil, err
	}

	counts := metrics.NewCountTable()
	for _, w := range filtered {
		counts.Add(w, 1)
	}

	length := len(raw)
	tf := metrics.NewScoreTable()
	counts.Each(func(term string, n int) {
		tf.Set(term, float64(n)/float64(length))
	})

	if err := store.PutCounts(metrics.StageWordFrequency, KeyWordCount, counts); err != nil {
		return nil, err
	}
	if err := store.PutScalar(metrics.StageWordFrequency, KeyLength, float64(length)); err != nil {
		return nil, err
	}
	if err := store.PutScores(metrics.StageWordFrequency, KeyTermFrequency, tf); err != nil {
		return nil, err
	}
	return tf, nil
}
