package ports

// LanguageDetector identifies the language of a text, returning an ISO 639-1
// style code such as "en" or "zh". ok=false means the detector could not
// reach a decision.
type LanguageDetector interface {
	Detect(text string) (code string, ok bool)
}

// DetectorFunc adapts an ordinary function to the LanguageDetector interface.
type DetectorFunc func(text string) (string, bool)

func (f DetectorFunc) Detect(text string) (string, bool) { return f(text) }
