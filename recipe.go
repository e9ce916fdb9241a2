// recipe.go
// The reference cleaning recipe: the normalizer and filter chain used to
// prepare bilingual training corpora, assembled from the configured language
// pair.
package corpuscleaner

import (
	"errors"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/filter"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/normalize"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
	"github.com/baditaflorin/go_corpus_cleaner/internal/textutil"
)

// RecipeConfig holds the tunables of the reference cleaning recipe.
type RecipeConfig struct {
	// SourceLang and TargetLang are ISO 639-1 style codes, e.g. "en", "zh".
	SourceLang string
	TargetLang string
	// OverlapRatio rejects near-copies; see filter.DefaultOverlapRatio.
	OverlapRatio float64
	// LengthRatio bounds the relative length difference between sides.
	LengthRatio float64
	// MaxWordLength rejects sides carrying an overlong whitespace token.
	// 0 disables the check.
	MaxWordLength int
	// Detector enables language-identity filtering when non-nil.
	Detector ports.LanguageDetector
	// Hant2HansSource / Hant2HansTarget convert Traditional Chinese to
	// Simplified on the respective side.
	Hant2HansSource bool
	Hant2HansTarget bool
}

// DefaultRecipeConfig returns the recipe defaults for a language pair.
func DefaultRecipeConfig(sourceLang, targetLang string) RecipeConfig {
	return RecipeConfig{
		SourceLang:    sourceLang,
		TargetLang:    targetLang,
		OverlapRatio:  filter.DefaultOverlapRatio,
		LengthRatio:   3,
		MaxWordLength: 40,
	}
}

// NewDefault builds a Pipeline with the reference recipe: control-character
// and whitespace normalization, paired-punctuation balancing, optional
// Traditional-to-Simplified conversion, then the standard filter chain.
// Extra options are applied on top, so callers can append filters or swap
// the logger.
func NewDefault(cfg RecipeConfig, opts ...Option) (*Pipeline, error) {
	if cfg.SourceLang == "" || cfg.TargetLang == "" {
		return nil, errors.New("recipe needs a language code for both sides")
	}

	recipe := []Option{
		WithTextNormalizer(normalize.NewNoPrintNormalizer()),
		WithTextNormalizer(normalize.NewSpaceNormalizer()),
		WithPairNormalizer(normalize.NewPairPunctNormalizer()),
	}
	if cfg.Hant2HansSource || cfg.Hant2HansTarget {
		recipe = append(recipe,
			WithPairNormalizer(normalize.NewHant2HansNormalizer(cfg.Hant2HansSource, cfg.Hant2HansTarget)))
	}

	recipe = append(recipe,
		WithFilter(filter.NewEmptyFilter()),
		WithFilter(filter.NewSameFilter(true)),
	)

	// Only reject all-ASCII pairs when one side is expected to use a
	// non-Latin script; for Latin-Latin pairs plain ASCII is legitimate.
	if expectsNonLatin(cfg.SourceLang) || expectsNonLatin(cfg.TargetLang) {
		recipe = append(recipe, WithFilter(filter.NewAllASCIIFilter()))
	}

	if cfg.OverlapRatio > 0 {
		overlap, err := filter.NewOverlapFilter(cfg.OverlapRatio)
		if err != nil {
			return nil, err
		}
		recipe = append(recipe, WithFilter(overlap))
	}

	if cfg.LengthRatio > 0 {
		lenFilter, err := filter.NewLengthFilter(filter.LengthConfig{
			SourceMin: 1,
			TargetMin: 1,
			Ratio:     cfg.LengthRatio,
			SourceLen: lengthFuncFor(cfg.SourceLang),
			TargetLen: lengthFuncFor(cfg.TargetLang),
		})
		if err != nil {
			return nil, err
		}
		recipe = append(recipe, WithFilter(lenFilter))
	}

	if cfg.MaxWordLength > 0 {
		longWord, err := filter.NewLongWordFilter(cfg.MaxWordLength, cfg.MaxWordLength)
		if err != nil {
			return nil, err
		}
		recipe = append(recipe, WithFilter(longWord))
	}

	if cfg.Detector != nil {
		lang, err := filter.NewLangFilter(cfg.SourceLang, cfg.TargetLang, cfg.Detector)
		if err != nil {
			return nil, err
		}
		recipe = append(recipe, WithFilter(lang))
	}

	return New(append(recipe, opts...)...)
}

func expectsNonLatin(lang string) bool {
	script, ok := filter.LangScripts[lang]
	return ok && script != "Latin"
}

// lengthFuncFor picks token counting for space-delimited languages and
// character counting otherwise.
func lengthFuncFor(lang string) textutil.LengthFunc {
	if script, ok := filter.LangScripts[lang]; ok && script != "Latin" {
		return textutil.RuneCount
	}
	return textutil.WordCount
}
