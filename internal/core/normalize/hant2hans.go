package normalize

import (
	"github.com/siongui/gojianfan"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// Hant2HansNormalizer converts Traditional Chinese characters to Simplified
// Chinese on the configured sides of a pair.
type Hant2HansNormalizer struct {
	normSource bool
	normTarget bool
}

func NewHant2HansNormalizer(normSource, normTarget bool) *Hant2HansNormalizer {
	return &Hant2HansNormalizer{normSource: normSource, normTarget: normTarget}
}

func (n *Hant2HansNormalizer) NormalizePair(p domain.Pair) domain.Pair {
	if n.normSource {
		p.Source = gojianfan.T2S(p.Source)
	}
	if n.normTarget {
		p.Target = gojianfan.T2S(p.Target)
	}
	return p
}
