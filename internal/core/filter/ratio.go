package filter

import (
	"errors"
	"unicode"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/textutil"
)

// DefaultASCIIRatioThreshold is the ASCII fraction above which a non-English
// side is considered suspect.
const DefaultASCIIRatioThreshold = 0.67

// ASCIIRatioConfig holds configuration for the ASCIIRatioFilter.
type ASCIIRatioConfig struct {
	Threshold    float64
	FilterSource bool
	FilterTarget bool
}

// DefaultASCIIRatioConfig checks the target side only, the usual setup when
// the target is the non-English language.
func DefaultASCIIRatioConfig() ASCIIRatioConfig {
	return ASCIIRatioConfig{Threshold: DefaultASCIIRatioThreshold, FilterTarget: true}
}

// Validate checks if the configuration is valid.
func (c ASCIIRatioConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("ascii ratio threshold must be between 0 and 1")
	}
	if !c.FilterSource && !c.FilterTarget {
		return errors.New("ascii ratio filter must check at least one side")
	}
	return nil
}

// ASCIIRatioFilter rejects pairs where the ASCII-character fraction of a
// configured side exceeds the threshold. An empty side scores 0 and is kept;
// pairing with EmptyFilter is expected.
type ASCIIRatioFilter struct {
	config ASCIIRatioConfig
}

func NewASCIIRatioFilter(config ASCIIRatioConfig) (*ASCIIRatioFilter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ASCIIRatioFilter{config: config}, nil
}

func (f *ASCIIRatioFilter) Name() string { return "ascii_ratio" }

func (f *ASCIIRatioFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if f.config.FilterSource && asciiRatio(p.Source) > f.config.Threshold {
		return domain.Pair{}, false
	}
	if f.config.FilterTarget && asciiRatio(p.Target) > f.config.Threshold {
		return domain.Pair{}, false
	}
	return p, true
}

func asciiRatio(s string) float64 {
	total := textutil.RuneCount(s)
	if total == 0 {
		return 0
	}
	return float64(textutil.ASCIICount(s)) / float64(total)
}

// DefaultAlphabetRatioThreshold is the minimum alphabetic fraction a segment
// must reach on both sides.
const DefaultAlphabetRatioThreshold = 0.75

// AlphabetRatioFilter rejects pairs where the proportion of alphabetic
// characters on either side falls below the threshold. With
// ExcludeWhitespace set, whitespace does not count toward the segment size.
type AlphabetRatioFilter struct {
	threshold         float64
	excludeWhitespace bool
}

func NewAlphabetRatioFilter(threshold float64, excludeWhitespace bool) (*AlphabetRatioFilter, error) {
	if threshold < 0 || threshold > 1 {
		return nil, errors.New("alphabet ratio threshold must be between 0 and 1")
	}
	return &AlphabetRatioFilter{threshold: threshold, excludeWhitespace: excludeWhitespace}, nil
}

func (f *AlphabetRatioFilter) Name() string { return "alphabet_ratio" }

func (f *AlphabetRatioFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if f.score(p.Source) < f.threshold || f.score(p.Target) < f.threshold {
		return domain.Pair{}, false
	}
	return p, true
}

// score is the alphabetic fraction of the segment, 0 for empty segments.
func (f *AlphabetRatioFilter) score(s string) float64 {
	total, alphas := 0, 0
	for _, r := range s {
		if f.excludeWhitespace && unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			alphas++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alphas) / float64(total)
}
