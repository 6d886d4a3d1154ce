package metrics

import "bytes"

// Table is a string-keyed mapping that remembers insertion order.
// Iteration order is the tie-break when scores are ranked.
type Table[V int | float64] struct {
	keys   []string
	values map[string]V
}

// ScoreTable maps terms to scores.
type ScoreTable = Table[float64]

// CountTable maps terms to occurrence counts.
type CountTable = Table[int]

// NewScoreTable creates an empty score table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{values: make(map[string]float64)}
}

// NewCountTable creates an empty count table.
func NewCountTable() *CountTable {
	return &CountTable{values: make(map[string]int)}
}

// Set stores v under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (t *Table[V]) Set(key string, v V) {
	if t.values == nil {
		t.values = make(map[string]V)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Add increments the value under key by delta.
func (t *Table[V]) Add(key string, delta V) {
	cur, _ := t.Get(key)
	t.Set(key, cur+delta)
}

// Get returns the value under key.
func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Each calls fn for every entry in insertion order.
func (t *Table[V]) Each(fn func(key string, v V)) {
	for _, k := range t.keys {
		fn(k, t.values[k])
	}
}

// Sum returns the total of all values.
func (t *Table[V]) Sum() V {
	var total V
	for _, k := range t.keys {
		total += t.values[k]
	}
	return total
}

// MarshalJSON encodes the table as a JSON object in insertion order.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, t.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
