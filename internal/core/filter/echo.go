package filter

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// EchoFilter rejects pairs where an alphanumeric token found on one side is
// absent verbatim from the other side, in either direction. Used on
// augmented Chinese-English data where product names, numbers and acronyms
// must survive translation unchanged.
type EchoFilter struct {
	word *regexp.Regexp
}

func NewEchoFilter() *EchoFilter {
	return &EchoFilter{word: regexp.MustCompile(`[a-zA-Z0-9]+`)}
}

func (f *EchoFilter) Name() string { return "echo" }

func (f *EchoFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if !f.echoed(p.Source, p.Target) || !f.echoed(p.Target, p.Source) {
		return domain.Pair{}, false
	}
	return p, true
}

// echoed reports whether every alphanumeric token of from appears as a
// substring of to.
func (f *EchoFilter) echoed(from, to string) bool {
	for _, w := range f.word.FindAllString(from, -1) {
		if !strings.Contains(to, w) {
			return false
		}
	}
	return true
}
