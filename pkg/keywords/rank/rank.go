package rank

import (
	"fmt"
	"sort"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/metrics"
)

// DefaultMaxKeywords is the number of keywords returned when none is given.
const DefaultMaxKeywords = 10

// Scored is a term with its score.
type Scored struct {
	Term  string
	Score float64
}

// Sorted returns every entry of the table ordered by score, highest first.
// Equal scores keep table order.
func Sorted(scores *metrics.ScoreTable) []Scored {
	out := make([]Scored, 0, scores.Len())
	if scores == nil {
		return out
	}
	scores.Each(func(term string, v float64) {
		out = append(out, Scored{Term: term, Score: v})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Select returns the max highest-scoring terms. Asking for more terms than
// the table holds, or for a negative number, is an error.
func Select(scores *metrics.ScoreTable, max int) ([]string, error) {
	if max < 0 || max > scores.Len() {
		return nil, fmt.Errorf("select %d keywords from %d terms: %w", max, scores.Len(), internalerr.ErrOutOfRange)
	}

	ranked := Sorted(scores)
	out := make([]string, max)
	for i := range out {
		out[i] = ranked[i].Term
	}
	return out, nil
}

// Clamp bounds a requested keyword count to the number of available terms.
// Zero or negative requests use DefaultMaxKeywords.
func Clamp(requested, available int) int {
	if requested <= 0 {
		requested = DefaultMaxKeywords
	}
	if requested > available {
		return available
	}
	return requested
}
