// Package validator warns when a translation does not look like the target
// language.
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/valpere/medtran/internal/detector"
)

// minWords is how many lexical words a translation needs before detection is
// attempted. Short clinical answers ("Sí", "Dolor de cabeza") always pass.
const minWords = 4

// neutralTokens read the same in every target language and say nothing about
// which one a sentence is written in.
var neutralTokens = map[string]bool{
	"mg": true, "mcg": true, "µg": true, "g": true, "kg": true,
	"ml": true, "l": true, "mmhg": true, "bpm": true, "iv": true,
	"im": true, "po": true, "prn": true, "bid": true, "tid": true,
	"qid": true, "ecg": true, "ekg": true, "covid": true,
}

// Validator checks translations against their target language with a lingua
// detector, which is expensive to build; share one instance.
type Validator struct {
	det *detector.Detector
}

func New(det *detector.Detector) *Validator {
	return &Validator{det: det}
}

// IsValid reports whether translatedText appears to be written in targetLang.
// Texts with fewer than minWords lexical words, and texts whose language
// cannot be determined, pass. A mismatch error names both codes.
func (v *Validator) IsValid(translatedText, targetLang string) (bool, error) {
	if targetLang == "" {
		return true, nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if lexicalWords(text) < minWords {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}
	if !strings.EqualFold(detected, targetLang) {
		return false, fmt.Errorf("expected %s but detected %s", strings.ToLower(targetLang), detected)
	}
	return true, nil
}

// lexicalWords counts words that carry language: numbers, doses, units and
// common clinical abbreviations are skipped. Scripts written without spaces
// count one word per ideograph or kana.
func lexicalWords(text string) int {
	n := 0
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if unspaced := countUnspaced(tok); unspaced > 0 {
			n += unspaced
			continue
		}
		if !hasLetter(tok) || neutralTokens[strings.ToLower(tok)] {
			continue
		}
		n++
	}
	return n
}

func countUnspaced(tok string) int {
	n := 0
	for _, r := range tok {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			n++
		}
	}
	return n
}

func hasLetter(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
