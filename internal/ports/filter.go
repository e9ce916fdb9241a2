package ports

import "github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"

// Filter inspects a sentence pair and either passes it through (possibly
// unchanged) or rejects it. ok=false means the pair is discarded.
//
// Implementations must be immutable after construction so a single instance
// can be called concurrently on independent pairs.
type Filter interface {
	// Name identifies the filter in rejection stats and diagnostics.
	Name() string
	Filter(p domain.Pair) (domain.Pair, bool)
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc struct {
	FilterName string
	Fn         func(p domain.Pair) (domain.Pair, bool)
}

func (f FilterFunc) Name() string { return f.FilterName }

func (f FilterFunc) Filter(p domain.Pair) (domain.Pair, bool) { return f.Fn(p) }
