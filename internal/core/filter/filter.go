// Package filter implements the parallel-corpus filters. Every filter
// inspects one (source, target) sentence pair and either passes it through
// unchanged or rejects it. Filters hold only immutable configuration and
// precompiled matchers after construction, so one instance can serve
// concurrent corpus shards.
//
// Boundary convention: rejection comparisons are strict. A "too much X"
// filter rejects on score > threshold, a "too little X" filter rejects on
// score < threshold; pairs landing exactly on a threshold are kept. Ratio
// scores with a zero denominator evaluate to 0.
package filter

import (
	"strings"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/textutil"
)

// SameFilter rejects pairs whose source and target are identical after
// trimming, optionally ignoring case.
type SameFilter struct {
	lower bool
}

// NewSameFilter creates a SameFilter. With lower=true the comparison is
// case-insensitive.
func NewSameFilter(lower bool) *SameFilter {
	return &SameFilter{lower: lower}
}

func (f *SameFilter) Name() string { return "same" }

func (f *SameFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	src := strings.TrimSpace(p.Source)
	tgt := strings.TrimSpace(p.Target)
	if f.lower {
		src = strings.ToLower(src)
		tgt = strings.ToLower(tgt)
	}
	if src == tgt {
		return domain.Pair{}, false
	}
	return p, true
}

// EmptyFilter rejects pairs where either side is empty after trimming.
type EmptyFilter struct{}

func NewEmptyFilter() *EmptyFilter { return &EmptyFilter{} }

func (f *EmptyFilter) Name() string { return "empty" }

func (f *EmptyFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if len(strings.TrimSpace(p.Source)) == 0 || len(strings.TrimSpace(p.Target)) == 0 {
		return domain.Pair{}, false
	}
	return p, true
}

// AllASCIIFilter rejects pairs where both sides are entirely ASCII, i.e.
// neither side looks like the expected non-English language.
type AllASCIIFilter struct{}

func NewAllASCIIFilter() *AllASCIIFilter { return &AllASCIIFilter{} }

func (f *AllASCIIFilter) Name() string { return "all_ascii" }

func (f *AllASCIIFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if textutil.IsASCII(p.Source) && textutil.IsASCII(p.Target) {
		return domain.Pair{}, false
	}
	return p, true
}

// HasZhFilter rejects pairs whose configured side contains any CJK Unified
// Ideograph. Used to drop pairs where Chinese leaked into the wrong side.
type HasZhFilter struct {
	filterSource bool
}

// NewHasZhFilter creates a HasZhFilter. filterSource selects which side is
// checked: true for source, false for target.
func NewHasZhFilter(filterSource bool) *HasZhFilter {
	return &HasZhFilter{filterSource: filterSource}
}

func (f *HasZhFilter) Name() string { return "has_zh" }

func (f *HasZhFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	side := p.Target
	if f.filterSource {
		side = p.Source
	}
	if textutil.HasHan(side) {
		return domain.Pair{}, false
	}
	return p, true
}
