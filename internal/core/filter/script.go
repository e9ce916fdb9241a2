package filter

import (
	"fmt"
	"unicode"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// LangScripts maps language codes to the Unicode script their alphabetic
// characters are expected to use. Extensible: add entries before building
// filters, or pass a script name directly to NewCharacterRatioFilter.
var LangScripts = map[string]string{
	"zh": "Han",
	"en": "Latin",
	"ko": "Hangul",
	"ar": "Arabic",
	"th": "Thai",
}

// CharacterRatioFilter rejects pairs where the fraction of alphabetic
// characters belonging to the expected script falls below a per-side
// threshold. An all-punctuation side scores 0 and is rejected by any
// threshold above 0.
type CharacterRatioFilter struct {
	scripts    []*unicode.RangeTable
	thresholds []float64
}

// NewCharacterRatioFilter creates a filter for a (source, target) pair of
// languages. Each entry of langs is either a language code known to
// LangScripts or a Unicode script name such as "Cyrillic". thresholds may be
// nil, defaulting every side to 1.
func NewCharacterRatioFilter(langs []string, thresholds []float64) (*CharacterRatioFilter, error) {
	if len(langs) != 2 {
		return nil, fmt.Errorf("character ratio filter needs one language per side, got %d", len(langs))
	}
	if thresholds == nil {
		thresholds = []float64{1, 1}
	}
	if len(thresholds) != len(langs) {
		return nil, fmt.Errorf("got %d thresholds for %d languages", len(thresholds), len(langs))
	}
	for _, th := range thresholds {
		if th < 0 || th > 1 {
			return nil, fmt.Errorf("character ratio threshold %v out of range [0,1]", th)
		}
	}

	scripts := make([]*unicode.RangeTable, len(langs))
	for i, lang := range langs {
		name := lang
		if mapped, ok := LangScripts[lang]; ok {
			name = mapped
		}
		table, ok := unicode.Scripts[name]
		if !ok {
			return nil, fmt.Errorf("unknown script for %q", lang)
		}
		scripts[i] = table
	}

	return &CharacterRatioFilter{scripts: scripts, thresholds: thresholds}, nil
}

func (f *CharacterRatioFilter) Name() string { return "character_ratio" }

func (f *CharacterRatioFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if f.score(p.Source, 0) < f.thresholds[0] || f.score(p.Target, 1) < f.thresholds[1] {
		return domain.Pair{}, false
	}
	return p, true
}

// score is the fraction of alphabetic runes in the expected script.
func (f *CharacterRatioFilter) score(s string, side int) float64 {
	alphas, inScript := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		alphas++
		if unicode.Is(f.scripts[side], r) {
			inScript++
		}
	}
	if alphas == 0 {
		return 0
	}
	return float64(inScript) / float64(alphas)
}
