package normalize

import (
	"strings"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// bracketPair is one opening/closing punctuation pair balanced by the
// PairPunctNormalizer. Open and close are equal for straight quotes.
type bracketPair struct {
	open, close string
}

var bracketPairs = []bracketPair{
	{"“", "”"}, // curly double quotes
	{`"`, `"`},           // straight double quotes
	{"‘", "’"}, // curly single quotes
	{"（", "）"}, // fullwidth parentheses
	{"《", "》"}, // Chinese title marks
	{"(", ")"},
}

// PairPunctNormalizer balances paired punctuation on source and target
// independently: doubled marks are dropped, then one unmatched opening and
// one unmatched closing mark are removed per scan (the first occurrence of
// each, not all).
type PairPunctNormalizer struct{}

func NewPairPunctNormalizer() *PairPunctNormalizer { return &PairPunctNormalizer{} }

func (n *PairPunctNormalizer) NormalizePair(p domain.Pair) domain.Pair {
	for _, bp := range bracketPairs {
		p.Source = balance(p.Source, bp)
		p.Target = balance(p.Target, bp)
	}
	return p
}

func balance(s string, bp bracketPair) string {
	if bp.open == bp.close {
		return balanceQuote(s, bp.open)
	}

	s = strings.ReplaceAll(s, bp.open+bp.open, "")
	s = strings.ReplaceAll(s, bp.close+bp.close, "")

	// Delete the first opening mark with no closing mark after it.
	if i := strings.Index(s, bp.open); i >= 0 && !strings.Contains(s[i+len(bp.open):], bp.close) {
		s = s[:i] + s[i+len(bp.open):]
	}
	// Delete the first closing mark with no opening mark before it.
	if i := strings.Index(s, bp.close); i >= 0 && !strings.Contains(s[:i], bp.open) {
		s = s[:i] + s[i+len(bp.close):]
	}
	return s
}

// balanceQuote handles marks whose opening and closing form is the same
// character: doubled runs are dropped, and an odd leftover quote (first
// occurrence) is removed.
func balanceQuote(s, q string) string {
	s = strings.ReplaceAll(s, q+q, "")
	if strings.Count(s, q)%2 == 1 {
		i := strings.Index(s, q)
		s = s[:i] + s[i+len(q):]
	}
	return s
}
