package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector for English plus the given ISO 639-1 codes. With no
// codes, or when fewer than two languages resolve, every language lingua
// knows is loaded.
func New(codes ...string) *Detector {
	langs := resolve(append([]string{"en"}, codes...))

	var builder lingua.LanguageDetectorBuilder
	if len(codes) == 0 || len(langs) < 2 {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(langs...)
	}
	return &Detector{detector: builder.Build()}
}

func resolve(codes []string) []lingua.Language {
	seen := make(map[lingua.Language]bool)
	var out []lingua.Language
	for _, code := range codes {
		for _, l := range lingua.AllLanguages() {
			if strings.EqualFold(l.IsoCode639_1().String(), code) && !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lowercase ISO 639-1 code of text's language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
