package normalize

import "golang.org/x/text/unicode/norm"

// NFKCNormalizer applies Unicode NFKC normalization, folding fullwidth and
// stylistic variants into their canonical forms (e.g. ｈｅｌｌｏ → hello).
// Not part of the default chain; useful ahead of ASCII-sensitive filters.
type NFKCNormalizer struct{}

func NewNFKCNormalizer() *NFKCNormalizer { return &NFKCNormalizer{} }

func (n *NFKCNormalizer) Normalize(s string) string {
	return norm.NFKC.String(s)
}
