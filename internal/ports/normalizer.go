package ports

import "github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"

// TextNormalizer defines the interface for single-text normalization.
type TextNormalizer interface {
	Normalize(text string) string
}

// PairNormalizer rewrites a sentence pair as a whole. Normalizers never
// reject; they only transform.
type PairNormalizer interface {
	NormalizePair(p domain.Pair) domain.Pair
}
