// Package detector identifies the language of fetched texts so runs can
// be labelled and filtered in the history.
package detector

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleLimit bounds how much text is fed to the detector; language
// identification converges long before that and the full book would just
// burn CPU.
const sampleLimit = 4096

// minConfidence below this the detection is reported as unknown.
const minConfidence = 0.5

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Ukrainian,
	lingua.Chinese,
	lingua.Japanese,
}

func sharedDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build()
	})
	return detector
}

// DetectLanguage returns the lowercase language name for text, or
// "unknown" when the text is empty or no candidate language reaches the
// confidence threshold.
func DetectLanguage(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return "unknown"
	}
	if len(sample) > sampleLimit {
		cut := sampleLimit
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	d := sharedDetector()
	language, exists := d.DetectLanguageOf(sample)
	if !exists {
		return "unknown"
	}
	if d.ComputeLanguageConfidence(sample, language) < minConfidence {
		return "unknown"
	}
	return strings.ToLower(language.String())
}
