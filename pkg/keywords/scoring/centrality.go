package scoring

import (
	"strings"

	"github.com/cognicore/keywords/pkg/keywords/graph"
	"github.com/cognicore/keywords/pkg/keywords/metrics"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
)

// Centrality ranks stems by PageRank over their sentence co-occurrence graph.
// Scores are keyed by stem; use SurfaceWords to turn top stems into
// keywords.
type Centrality struct {
	Stemmer  nlp.Stemmer
	TFIDF    *TFIDF
	PageRank graph.PageRankOptions
}

// NewCentrality creates a centrality scorer with the default PageRank
// constants.
func NewCentrality(stemmer nlp.Stemmer, tfidf *TFIDF) *Centrality {
	if tfidf == nil {
		tfidf = NewTFIDF(DefaultDocCounter)
	}
	return &Centrality{
		Stemmer:  stemmer,
		TFIDF:    tfidf,
		PageRank: graph.DefaultPageRank,
	}
}

// Score implements Scorer. TF-IDF runs first unless it already has.
func (c *Centrality) Score(store *metrics.Store) (*metrics.ScoreTable, error) {
	if store.Has(metrics.StagePageRank, KeyScores) {
		return store.Scores(metrics.StagePageRank, KeyScores)
	}

	if _, err := c.TFIDF.Score(store); err != nil {
		return nil, err
	}

	sentences, err := store.Nested(metrics.StageStopWordFree, keyWordsPerSentence)
	if err != nil {
		return nil, err
	}

	stemmed := make([][]string, len(sentences))
	var flat []string
	for i, words := range sentences {
		stemmed[i] = make([]string, len(words))
		for j, w := range words {
			stemmed[i][j] = c.Stemmer.Stem(w)
		}
		flat = append(flat, stemmed[i]...)
	}

	g := graph.FromSentences(stemmed)
	scores := metrics.NewScoreTable()
	for _, r := range g.PageRank(c.PageRank) {
		scores.Set(r.Term, r.Score)
	}

	if err := store.PutNested(metrics.StageStemmed, KeyStemsPerSentence, stemmed); err != nil {
		return nil, err
	}
	if err := store.PutSequence(metrics.StageStemmed, KeyStems, flat); err != nil {
		return nil, err
	}
	if err := store.PutGraph(metrics.StagePageRank, KeyGraph, g); err != nil {
		return nil, err
	}
	if err := store.PutScores(metrics.StagePageRank, KeyScores, scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// SurfaceWords maps ranked stems back to readable words. A stem that is
// itself one of the words is kept; otherwise the first word (in order) that
// starts with the stem, ignoring case, stands in for it. Stems with no match
// are dropped and repeated words are collapsed, so the result may be shorter
// than stems.
func SurfaceWords(stems, words []string) []string {
	known := make(map[string]struct{}, len(words))
	for _, w := range words {
		known[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(stems))
	out := make([]string, 0, len(stems))
	for _, stem := range stems {
		word, ok := surfaceWord(stem, words, known)
		if !ok {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

func surfaceWord(stem string, words []string, known map[string]struct{}) (string, bool) {
	if _, ok := known[stem]; ok {
		return stem, true
	}
	prefix := strings.ToLower(stem)
	for _, w := range words {
		if strings.HasPrefix(strings.ToLower(w), prefix) {
			return w, true
		}
	}
	return "", false
}

// UniqueWords returns the deduplicated stopword-free words recorded by
// preprocessing.
func UniqueWords(store *metrics.Store) ([]string, error) {
	return store.Sequence(metrics.StageStopWordFree, keyUniqueWords)
}
