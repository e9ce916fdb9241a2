package filter

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/textutil"
)

// LengthConfig holds configuration for the LengthFilter. A bound of 0 means
// unbounded on that end; a Ratio of 0 disables the ratio check.
type LengthConfig struct {
	SourceMin, SourceMax int
	TargetMin, TargetMax int
	// Ratio bounds the relative length difference: the pair is kept only if
	// srcLen <= Ratio*tgtLen and tgtLen <= Ratio*srcLen.
	Ratio float64
	// SourceLen and TargetLen measure sentence length. Character count when
	// nil; pass textutil.WordCount for space-delimited languages.
	SourceLen, TargetLen textutil.LengthFunc
}

// Validate checks if the configuration is valid.
func (c LengthConfig) Validate() error {
	if c.SourceMin < 0 || c.SourceMax < 0 || c.TargetMin < 0 || c.TargetMax < 0 {
		return errors.New("length bounds must not be negative")
	}
	if c.SourceMax > 0 && c.SourceMin > c.SourceMax {
		return errors.New("source min length exceeds max length")
	}
	if c.TargetMax > 0 && c.TargetMin > c.TargetMax {
		return errors.New("target min length exceeds max length")
	}
	if c.Ratio < 0 {
		return errors.New("length ratio must not be negative")
	}
	return nil
}

// LengthFilter rejects pairs whose per-side length falls outside the
// configured bounds, or whose length ratio between sides is too large.
type LengthFilter struct {
	config LengthConfig
}

// NewLengthFilter creates a LengthFilter, failing fast on invalid bounds.
func NewLengthFilter(config LengthConfig) (*LengthFilter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.SourceLen == nil {
		config.SourceLen = textutil.RuneCount
	}
	if config.TargetLen == nil {
		config.TargetLen = textutil.RuneCount
	}
	return &LengthFilter{config: config}, nil
}

func (f *LengthFilter) Name() string { return "length" }

func (f *LengthFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	srcLen := f.config.SourceLen(p.Source)
	tgtLen := f.config.TargetLen(p.Target)

	c := f.config
	if c.SourceMin > 0 && srcLen < c.SourceMin {
		return domain.Pair{}, false
	}
	if c.SourceMax > 0 && srcLen > c.SourceMax {
		return domain.Pair{}, false
	}
	if c.TargetMin > 0 && tgtLen < c.TargetMin {
		return domain.Pair{}, false
	}
	if c.TargetMax > 0 && tgtLen > c.TargetMax {
		return domain.Pair{}, false
	}
	if c.Ratio > 0 && !withinRatio(srcLen, tgtLen, c.Ratio) {
		return domain.Pair{}, false
	}
	return p, true
}

// withinRatio applies the symmetric ratio bound used by the length filters.
func withinRatio(a, b int, ratio float64) bool {
	return float64(a) <= ratio*float64(b) && float64(b) <= ratio*float64(a)
}

// LenDiffFilter rejects pairs whose source and target lengths differ by more
// than the configured ratio, in either direction.
type LenDiffFilter struct {
	ratio                float64
	sourceLen, targetLen textutil.LengthFunc
}

// NewLenDiffFilter creates a LenDiffFilter. Length functions default to
// character count when nil.
func NewLenDiffFilter(ratio float64, sourceLen, targetLen textutil.LengthFunc) (*LenDiffFilter, error) {
	if ratio <= 0 {
		return nil, errors.New("length diff ratio must be greater than 0")
	}
	if sourceLen == nil {
		sourceLen = textutil.RuneCount
	}
	if targetLen == nil {
		targetLen = textutil.RuneCount
	}
	return &LenDiffFilter{ratio: ratio, sourceLen: sourceLen, targetLen: targetLen}, nil
}

func (f *LenDiffFilter) Name() string { return "len_diff" }

func (f *LenDiffFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if !withinRatio(f.sourceLen(p.Source), f.targetLen(p.Target), f.ratio) {
		return domain.Pair{}, false
	}
	return p, true
}

// LongWordFilter rejects pairs where any whitespace-delimited token exceeds
// the per-side maximum. Only meaningful for languages that use spaces as
// word dividers; a max of 0 disables the check for that side.
type LongWordFilter struct {
	sourceMax, targetMax int
}

func NewLongWordFilter(sourceMax, targetMax int) (*LongWordFilter, error) {
	if sourceMax < 0 || targetMax < 0 {
		return nil, errors.New("long word bounds must not be negative")
	}
	return &LongWordFilter{sourceMax: sourceMax, targetMax: targetMax}, nil
}

func (f *LongWordFilter) Name() string { return "long_word" }

func (f *LongWordFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if hasLongWord(p.Source, f.sourceMax) || hasLongWord(p.Target, f.targetMax) {
		return domain.Pair{}, false
	}
	return p, true
}

func hasLongWord(s string, max int) bool {
	if max == 0 {
		return false
	}
	for _, w := range strings.Fields(s) {
		if utf8.RuneCountInString(w) > max {
			return true
		}
	}
	return false
}
