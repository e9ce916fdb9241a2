package filter

import (
	"errors"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
)

// LangFilter rejects pairs where the detected language of either side does
// not match the expected code. Detection is delegated to a pluggable
// collaborator; a side the detector cannot classify counts as a mismatch.
type LangFilter struct {
	sourceLang string
	targetLang string
	detector   ports.LanguageDetector
}

func NewLangFilter(sourceLang, targetLang string, detector ports.LanguageDetector) (*LangFilter, error) {
	if sourceLang == "" || targetLang == "" {
		return nil, errors.New("lang filter needs a language code for both sides")
	}
	if detector == nil {
		return nil, errors.New("lang filter needs a language detector")
	}
	return &LangFilter{sourceLang: sourceLang, targetLang: targetLang, detector: detector}, nil
}

func (f *LangFilter) Name() string { return "lang" }

func (f *LangFilter) Filter(p domain.Pair) (domain.Pair, bool) {
	if code, ok := f.detector.Detect(p.Source); !ok || code != f.sourceLang {
		return domain.Pair{}, false
	}
	if code, ok := f.detector.Detect(p.Target); !ok || code != f.targetLang {
		return domain.Pair{}, false
	}
	return p, true
}
