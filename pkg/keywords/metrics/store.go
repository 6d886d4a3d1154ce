package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cognicore/keywords/pkg/keywords/graph"
	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
)

// Stage names one step of the extraction pipeline.
type Stage int

const (
	StageTokens Stage = iota
	StagePOS
	StageLemma
	StageStopWordFree
	StageWordFrequency
	StageTFIDF
	StageStemmed
	StagePageRank

	numStages
)

var stageNames = [numStages]string{
	"tokens",
	"pos",
	"lemma",
	"stop_word_free",
	"word_frequency",
	"tf_idf",
	"stemmed",
	"page_rank",
}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Stages returns every stage in pipeline order.
func Stages() []Stage {
	out := make([]Stage, numStages)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

// ParseStage resolves a stage by its name.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("stage %q: %w", name, internalerr.ErrNotFound)
}

type entry struct {
	key   string
	value any
}

// Store records every artifact produced while extracting keywords from one
// document. Artifacts are addressed by stage and key and can be written only
// once. Slices returned by the accessors are owned by the store and must not
// be modified.
type Store struct {
	text   string
	stages [numStages][]entry
}

// New creates an empty store for a document.
func New(text string) *Store {
	return &Store{text: text}
}

// Text returns the source document.
func (s *Store) Text() string {
	return s.text
}

// Has reports whether an artifact exists.
func (s *Store) Has(stage Stage, key string) bool {
	_, ok := s.lookup(stage, key)
	return ok
}

// Keys lists the keys written to a stage in write order.
func (s *Store) Keys(stage Stage) []string {
	if !stage.valid() {
		return nil
	}
	out := make([]string, len(s.stages[stage]))
	for i, e := range s.stages[stage] {
		out[i] = e.key
	}
	return out
}

func (s Stage) valid() bool {
	return s >= 0 && s < numStages
}

func (s *Store) lookup(stage Stage, key string) (any, bool) {
	if !stage.valid() {
		return nil, false
	}
	for _, e := range s.stages[stage] {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

func (s *Store) put(stage Stage, key string, v any) error {
	if !stage.valid() {
		return fmt.Errorf("write %v/%s: %w", stage, key, internalerr.ErrInvalidInput)
	}
	if _, ok := s.lookup(stage, key); ok {
		return fmt.Errorf("write %v/%s: %w", stage, key, internalerr.ErrArtifactExists)
	}
	s.stages[stage] = append(s.stages[stage], entry{key: key, value: v})
	return nil
}

func get[T any](s *Store, stage Stage, key string) (T, error) {
	var zero T
	v, ok := s.lookup(stage, key)
	if !ok {
		return zero, fmt.Errorf("read %v/%s: %w", stage, key, internalerr.ErrNotFound)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("read %v/%s: artifact is %T, not %T: %w", stage, key, v, zero, internalerr.ErrInvalidInput)
	}
	return typed, nil
}

// PutSequence stores a flat sequence of strings.
func (s *Store) PutSequence(stage Stage, key string, seq []string) error {
	cp := make([]string, len(seq))
	copy(cp, seq)
	return s.put(stage, key, cp)
}

// Sequence reads a flat sequence of strings.
func (s *Store) Sequence(stage Stage, key string) ([]string, error) {
	return get[[]string](s, stage, key)
}

// PutNested stores a sequence of sequences, such as words per sentence.
func (s *Store) PutNested(stage Stage, key string, nested [][]string) error {
	cp := make([][]string, len(nested))
	for i, inner := range nested {
		cp[i] = make([]string, len(inner))
		copy(cp[i], inner)
	}
	return s.put(stage, key, cp)
}

// Nested reads a sequence of sequences.
func (s *Store) Nested(stage Stage, key string) ([][]string, error) {
	return get[[][]string](s, stage, key)
}

// PutTagged stores tagged words grouped by sentence.
func (s *Store) PutTagged(stage Stage, key string, tagged [][]nlp.TaggedWord) error {
	cp := make([][]nlp.TaggedWord, len(tagged))
	for i, inner := range tagged {
		cp[i] = make([]nlp.TaggedWord, len(inner))
		copy(cp[i], inner)
	}
	return s.put(stage, key, cp)
}

// Tagged reads tagged words grouped by sentence.
func (s *Store) Tagged(stage Stage, key string) ([][]nlp.TaggedWord, error) {
	return get[[][]nlp.TaggedWord](s, stage, key)
}

// PutCounts stores a count table.
func (s *Store) PutCounts(stage Stage, key string, t *CountTable) error {
	return s.put(stage, key, t)
}

// Counts reads a count table.
func (s *Store) Counts(stage Stage, key string) (*CountTable, error) {
	return get[*CountTable](s, stage, key)
}

// PutScores stores a score table.
func (s *Store) PutScores(stage Stage, key string, t *ScoreTable) error {
	return s.put(stage, key, t)
}

// Scores reads a score table.
func (s *Store) Scores(stage Stage, key string) (*ScoreTable, error) {
	return get[*ScoreTable](s, stage, key)
}

// PutScalar stores a single number.
func (s *Store) PutScalar(stage Stage, key string, v float64) error {
	return s.put(stage, key, v)
}

// Scalar reads a single number.
func (s *Store) Scalar(stage Stage, key string) (float64, error) {
	return get[float64](s, stage, key)
}

// PutGraph stores a co-occurrence graph.
func (s *Store) PutGraph(stage Stage, key string, g *graph.Graph) error {
	return s.put(stage, key, g)
}

// Graph reads a co-occurrence graph.
func (s *Store) Graph(stage Stage, key string) (*graph.Graph, error) {
	return get[*graph.Graph](s, stage, key)
}

// MarshalJSON encodes the store as one object: "text" first, then every
// stage in pipeline order. Stages that were never written encode as null;
// keys within a stage keep write order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"text":`)
	if err := writeJSON(&buf, s.text); err != nil {
		return nil, err
	}

	for stage, entries := range s.stages {
		buf.WriteByte(',')
		if err := writeJSON(&buf, stageNames[stage]); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if entries == nil {
			buf.WriteString("null")
			continue
		}

		buf.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(&buf, e.key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSON(&buf, e.value); err != nil {
				return nil, fmt.Errorf("encode %s/%s: %w", stageNames[stage], e.key, err)
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON appends the encoding of v without HTML escaping or a trailing
// newline.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
