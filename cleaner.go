// cleaner.go
// Package corpuscleaner cleans parallel corpora for machine-translation
// training. A Pipeline is an ordered chain of normalizers (rewrite a
// sentence pair) followed by filters (reject a sentence pair); composition
// short-circuits at the first rejection. Construction may be expensive
// (regex compilation, language-model loading), application is cheap, and a
// built Pipeline holds no mutable state so it can be shared across corpus
// shards.
//
// This version uses the functional options pattern to allow configuration of
// the chain, the logger, and pre-run warmup.
package corpuscleaner

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/stream"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/normalize"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
	"github.com/baditaflorin/go_corpus_cleaner/internal/warmup"
)

// Pair is one (source, target) sentence pair from an aligned bilingual
// corpus.
type Pair = domain.Pair

// Stats holds the outcome of a streaming cleaning run.
type Stats = domain.Stats

// Processor streams corpus files through a Pipeline.
type Processor = stream.Processor

// ProcessorConfig holds streaming configuration (worker count, batch size).
type ProcessorConfig = stream.Config

// DefaultProcessorConfig returns the default streaming configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return stream.DefaultProcessorConfig()
}

// Pipeline applies an ordered normalizer chain and filter chain to sentence
// pairs.
type Pipeline struct {
	normalizers []ports.PairNormalizer
	filters     []ports.Filter
	logger      ports.Logger
}

// Option defines a functional option for configuring a Pipeline.
type Option func(*pipelineConfig)

type pipelineConfig struct {
	normalizers []ports.PairNormalizer
	filters     []ports.Filter
	logger      ports.Logger
	warmup      bool
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *pipelineConfig) {
		cfg.logger = logger.FromExisting(lg)
	}
}

// WithPairNormalizer appends a pair-level normalizer to the chain.
func WithPairNormalizer(n ports.PairNormalizer) Option {
	return func(cfg *pipelineConfig) {
		cfg.normalizers = append(cfg.normalizers, n)
	}
}

// WithTextNormalizer appends a single-text normalizer, applied to both sides
// of each pair.
func WithTextNormalizer(n ports.TextNormalizer) Option {
	return func(cfg *pipelineConfig) {
		cfg.normalizers = append(cfg.normalizers, normalize.ForPair(n, true, true))
	}
}

// WithFilter appends a filter to the chain.
func WithFilter(f ports.Filter) Option {
	return func(cfg *pipelineConfig) {
		cfg.filters = append(cfg.filters, f)
	}
}

// WithWarmup exercises the chain on sample pairs during New, so pattern
// matchers and pools are hot before the first corpus line.
func WithWarmup() Option {
	return func(cfg *pipelineConfig) {
		cfg.warmup = true
	}
}

// New creates a Pipeline from the configured chain.
func New(opts ...Option) (*Pipeline, error) {
	cfg := &pipelineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		lg, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.logger = lg
	}

	p := &Pipeline{
		normalizers: cfg.normalizers,
		filters:     cfg.filters,
		logger:      cfg.logger,
	}

	if cfg.warmup {
		mgr := warmup.NewManager(cfg.logger, warmup.DefaultConfig())
		for _, n := range p.normalizers {
			mgr.RegisterNormalizer(n)
		}
		for _, f := range p.filters {
			mgr.RegisterFilter(f)
		}
		mgr.WarmUp(context.Background())
	}

	return p, nil
}

// Apply runs one pair through the chain. When ok=false the pair was
// discarded and rejectedBy names the filter responsible.
func (p *Pipeline) Apply(pair Pair) (out Pair, rejectedBy string, ok bool) {
	for _, n := range p.normalizers {
		pair = n.NormalizePair(pair)
	}
	for _, f := range p.filters {
		if pair, ok = f.Filter(pair); !ok {
			return Pair{}, f.Name(), false
		}
	}
	return pair, "", true
}

// Run runs one pair through the chain, without rejection attribution.
func (p *Pipeline) Run(pair Pair) (Pair, bool) {
	out, _, ok := p.Apply(pair)
	return out, ok
}

// NewProcessor creates a streaming corpus processor driving this pipeline.
func (p *Pipeline) NewProcessor(config ProcessorConfig) (*Processor, error) {
	return stream.NewProcessor(p, p.logger, config)
}
