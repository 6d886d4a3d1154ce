package keywords

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/keywords/pkg/keywords/ingest"
	"github.com/cognicore/keywords/pkg/keywords/internalerr"
	"github.com/cognicore/keywords/pkg/keywords/metrics"
	"github.com/cognicore/keywords/pkg/keywords/nlp"
	"github.com/cognicore/keywords/pkg/keywords/rank"
	"github.com/cognicore/keywords/pkg/keywords/scoring"
	"github.com/cognicore/keywords/pkg/keywords/stoplist"
)

// Extractor is the keyword extraction facade
type Extractor struct {
	pipeline   *ingest.Pipeline
	backend    nlp.Backend
	docCounter int
	workers    int
	logger     *zap.Logger
	ids        *idSource
}

// Options configures an Extractor. Zero values select the defaults: the
// English perceptron backend, the built-in English stoplist, a corpus of one
// document, sequential batches and no logging.
type Options struct {
	Backend    nlp.Backend
	Stoplist   *stoplist.Manager
	DocCounter int
	Workers    int
	Logger     *zap.Logger
}

// New creates an Extractor with the given dependencies
func New(opts Options) (*Extractor, error) {
	if opts.Backend == nil {
		backend, err := nlp.NewEnglish(nlp.TaggerPerceptron, nil)
		if err != nil {
			return nil, err
		}
		opts.Backend = backend
	}
	if opts.Stoplist == nil {
		stops, err := stoplist.ForLanguage(stoplist.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		opts.Stoplist = stops
	}
	if opts.DocCounter < 1 {
		opts.DocCounter = scoring.DefaultDocCounter
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Extractor{
		pipeline:   ingest.NewPipeline(opts.Backend, opts.Stoplist),
		backend:    opts.Backend,
		docCounter: opts.DocCounter,
		workers:    opts.Workers,
		logger:     opts.Logger,
		ids:        newIDSource(),
	}, nil
}

// Envelope is the result of extracting keywords from one document.
type Envelope struct {
	Text     string         `json:"text"`
	Method   Method         `json:"extraction_method"`
	Keywords []string       `json:"keywords"`
	File     *metrics.Store `json:"file"`
}

// ExtractOne extracts up to maxKeywords keywords from text. A maxKeywords of
// zero selects rank.DefaultMaxKeywords; a request larger than the number of
// scored terms returns every term.
func (e *Extractor) ExtractOne(text string, method Method, maxKeywords int) (Envelope, error) {
	if maxKeywords < 0 {
		return Envelope{}, fmt.Errorf("max keywords %d: %w", maxKeywords, internalerr.ErrOutOfRange)
	}
	scorer, err := e.scorer(method)
	if err != nil {
		return Envelope{}, err
	}

	log := e.logger.With(
		zap.String("extraction_id", e.ids.Next()),
		zap.Stringer("method", method),
	)
	start := time.Now()

	store := metrics.New(text)
	doc, err := e.pipeline.Process(store)
	if err != nil {
		return Envelope{}, err
	}
	log.Debug("preprocessed",
		zap.Int("tokens", len(doc.Words)),
		zap.Int("sentences", len(doc.Filtered)),
		zap.Duration("elapsed", time.Since(start)),
	)

	scores, err := scorer.Score(store)
	if err != nil {
		return Envelope{}, fmt.Errorf("score %s: %w", method, err)
	}

	top, err := rank.Select(scores, rank.Clamp(maxKeywords, scores.Len()))
	if err != nil {
		return Envelope{}, err
	}

	if method == MethodPageRank {
		words, err := scoring.UniqueWords(store)
		if err != nil {
			return Envelope{}, err
		}
		top = scoring.SurfaceWords(top, words)
	}

	log.Debug("extracted",
		zap.Int("terms", scores.Len()),
		zap.Strings("keywords", top),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Envelope{
		Text:     text,
		Method:   method,
		Keywords: top,
		File:     store,
	}, nil
}

// ExtractMany runs ExtractOne for every document, keyed by path. Documents
// are processed by up to Options.Workers goroutines; the results do not depend
// on the worker count. The first failure cancels the batch.
func (e *Extractor) ExtractMany(ctx context.Context, docs map[string]string, method Method, maxKeywords int) (map[string]Envelope, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("method %q: %w", method, internalerr.ErrUnsupportedMethod)
	}

	paths := make([]string, 0, len(docs))
	for path := range docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var (
		mu      sync.Mutex
		results = make(map[string]Envelope, len(docs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			env, err := e.ExtractOne(docs[path], method, maxKeywords)
			if err != nil {
				return fmt.Errorf("extract %s: %w", path, err)
			}
			mu.Lock()
			results[path] = env
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.Debug("batch extracted",
		zap.Stringer("method", method),
		zap.Int("documents", len(results)),
		zap.Int("workers", e.workers),
	)
	return results, nil
}

// scorer maps a method to its scoring strategy.
func (e *Extractor) scorer(method Method) (scoring.Scorer, error) {
	switch method {
	case MethodWordFrequency:
		return scoring.Frequency{}, nil
	case MethodTFIDF:
		return scoring.NewTFIDF(e.docCounter), nil
	case MethodPageRank:
		return scoring.NewCentrality(e.backend, scoring.NewTFIDF(e.docCounter)), nil
	}
	return nil, fmt.Errorf("method %q: %w", method, internalerr.ErrUnsupportedMethod)
}
