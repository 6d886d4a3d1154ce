package rank

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/metrics"
)

func table(entries ...Scored) *metrics.ScoreTable {
	t := metrics.NewScoreTable()
	for _, e := range entries {
		t.Set(e.Term, e.Score)
	}
	return t
}

func TestSelectOrdersByScore(t *testing.T) {
	scores := table(
		Scored{"mat", 0.1},
		Scored{"cat", 0.2},
		Scored{"sit", 0.1},
		Scored{"run", 0.15},
	)

	got, err := Select(scores, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"cat", "run", "mat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelectTiesKeepInsertionOrder(t *testing.T) {
	scores := table(
		Scored{"zebra", 5},
		Scored{"apple", 5},
		Scored{"mango", 5},
	)

	got, err := Select(scores, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"zebra", "apple", "mango"}) {
		t.Errorf("ties should keep table order, got %v", got)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	scores := table(Scored{"a", 1})

	if _, err := Select(scores, 2); !errors.Is(err, internalerr.ErrOutOfRange) {
		t.Errorf("max > len: expected ErrOutOfRange, got %v", err)
	}
	if _, err := Select(scores, -1); !errors.Is(err, internalerr.ErrOutOfRange) {
		t.Errorf("negative max: expected ErrOutOfRange, got %v", err)
	}
	if got, err := Select(scores, 0); err != nil || len(got) != 0 {
		t.Errorf("Select(0) = %v, %v", got, err)
	}
}

func TestSortedDoesNotModifyTable(t *testing.T) {
	scores := table(Scored{"low", 1}, Scored{"high", 2})
	ranked := Sorted(scores)

	if ranked[0].Term != "high" {
		t.Errorf("expected high first, got %v", ranked)
	}
	if keys := scores.Keys(); keys[0] != "low" {
		t.Errorf("table order changed: %v", keys)
	}
	if len(Sorted(nil)) != 0 {
		t.Error("nil table should sort to nothing")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		requested, available, want int
	}{
		{5, 10, 5},
		{10, 3, 3},
		{0, 20, DefaultMaxKeywords},
		{-4, 2, 2},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.requested, tt.available); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.requested, tt.available, got, tt.want)
		}
	}
}
