// Package normalize implements the corpus text normalizers and the adapters
// that lift single-text normalizers to pair level. Normalizers rewrite text
// deterministically and never reject; each is a pure function per call with
// matchers precompiled at construction.
package normalize

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_corpus_cleaner/internal/textutil"
)

// SpaceNormalizer canonicalizes whitespace: full-width and non-breaking
// spaces become ASCII spaces, runs collapse to one, and spaces adjacent to a
// non-ASCII character are dropped. Spaces only carry meaning between ASCII
// tokens. Idempotent.
type SpaceNormalizer struct {
	runs *regexp.Regexp
}

func NewSpaceNormalizer() *SpaceNormalizer {
	return &SpaceNormalizer{runs: regexp.MustCompile(`\s{2,}`)}
}

func (n *SpaceNormalizer) Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "　", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = n.runs.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == ' ' {
			if i > 0 && !textutil.IsASCIIRune(runes[i-1]) {
				continue
			}
			if i < len(runes)-1 && !textutil.IsASCIIRune(runes[i+1]) {
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}
