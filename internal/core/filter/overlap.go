package filter

import (
	"errors"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// DefaultOverlapRatio is the sequence-similarity ratio above which source and
// target are considered near-duplicates.
const DefaultOverlapRatio = 0.8

// OverlapFilter rejects pairs whose source and target overlap too much,
// measured by the difflib sequence-matcher ratio over characters.
type OverlapFilter struct {
	ratio float64
}

func NewOverlapFilter(ratio float64) (*OverlapFilter, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, errors.New("overlap ratio must be in (0, 1]")
	}
	return &OverlapFilter{ratio: ratio}, nil
}

func (f *OverlapFilter) Name() string { return "overlap" }

func (f *OverlapFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	m := difflib.NewMatcher(splitChars(p.Source), splitChars(p.Target))
	if m.Ratio() > f.ratio {
		return domain.Pair{}, false
	}
	return p, true
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
