// Package langid provides the default language-detection collaborator,
// backed by the lingua-go statistical detector.
package langid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector adapts lingua-go to the ports.LanguageDetector interface.
// Building a detector loads the language models and is expensive; do it once
// and share the instance, it is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// New creates a detector restricted to the given ISO 639-1 codes. Narrowing
// the candidate set keeps detection fast and accurate for corpus cleaning,
// where the two expected languages are known up front.
func New(codes ...string) (*Detector, error) {
	if len(codes) < 2 {
		return nil, errors.New("language detector needs at least two candidate languages")
	}
	langs := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		lang, ok := languageForCode(code)
		if !ok {
			return nil, fmt.Errorf("unsupported language code %q", code)
		}
		langs = append(langs, lang)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()

	return &Detector{detector: detector}, nil
}

// Detect returns the lowercased ISO 639-1 code of the detected language.
func (d *Detector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

func languageForCode(code string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.IsoCode639_1().String(), code) {
			return lang, true
		}
	}
	return lingua.Unknown, false
}
