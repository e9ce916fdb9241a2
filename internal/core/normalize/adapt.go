package normalize

import (
	"strings"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
)

// ForPair lifts a single-text normalizer to pair level, applying it to the
// selected sides.
func ForPair(tn ports.TextNormalizer, onSource, onTarget bool) ports.PairNormalizer {
	return &pairAdapter{tn: tn, onSource: onSource, onTarget: onTarget}
}

type pairAdapter struct {
	tn                 ports.TextNormalizer
	onSource, onTarget bool
}

func (a *pairAdapter) NormalizePair(p domain.Pair) domain.Pair {
	if a.onSource {
		p.Source = a.tn.Normalize(p.Source)
	}
	if a.onTarget {
		p.Target = a.tn.Normalize(p.Target)
	}
	return p
}

// SplitPair decodes a tab-joined "src\ttgt" line. ok=false when the line
// does not hold exactly two fields.
func SplitPair(line string) (domain.Pair, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return domain.Pair{}, false
	}
	return domain.Pair{Source: fields[0], Target: fields[1]}, true
}

// JoinPair encodes a pair as a tab-joined line.
func JoinPair(p domain.Pair) string {
	return p.Source + "\t" + p.Target
}

// TabJoined exposes a pair normalizer as a text normalizer over the
// tab-joined serialization. A line that does not split into exactly two
// fields is returned unchanged; when a logger is given the offending line is
// reported instead of failing the stream.
func TabJoined(pn ports.PairNormalizer, logger ports.Logger) ports.TextNormalizer {
	return &tabAdapter{pn: pn, logger: logger}
}

type tabAdapter struct {
	pn     ports.PairNormalizer
	logger ports.Logger
}

func (a *tabAdapter) Normalize(line string) string {
	p, ok := SplitPair(line)
	if !ok {
		if a.logger != nil {
			a.logger.Warn("Skipping malformed pair line", "line", line)
		}
		return line
	}
	return JoinPair(a.pn.NormalizePair(p))
}
