// Package postprocess cleans speech-capture output before it becomes session
// input.
//
// Recognizers (whisper.cpp wrappers in particular) emit non-speech markers
// and odd spacing that should not be sent to translation.
package postprocess

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanTranscript normalizes a raw transcript in three phases and returns
// the trimmed result:
//  1. Unicode NFC normalization
//  2. Non-speech marker removal
//  3. Whitespace collapse and quote wrapping removal
func CleanTranscript(text string) string {
	text = norm.NFC.String(text)
	text = removeMarkers(text)
	text = collapseWhitespace(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// --- Phase 2: non-speech markers ---

// markerRe matches bracketed annotations such as [BLANK_AUDIO], [Music],
// (coughs) or *laughs*. Parenthesised text is only treated as a marker when
// it is a short lowercase or uppercase run, so "(left arm)" stays.
var markerRe = regexp.MustCompile(
	`\[[^\]]{1,40}\]|\((?:[a-z ]{1,20}|[A-Z_ ]{1,20})\)|\*[a-zA-Z ]{1,20}\*`,
)

// speechParenRe lists parenthesised phrases that are clinically meaningful and
// must survive marker removal.
var speechParenRe = regexp.MustCompile(`(?i)^\((?:left|right|both|upper|lower)\b`)

func removeMarkers(text string) string {
	return markerRe.ReplaceAllStringFunc(text, func(m string) string {
		if speechParenRe.MatchString(m) {
			return m
		}
		return " "
	})
}

// --- Phase 3: whitespace and quotes ---

var spaceRe = regexp.MustCompile(`\s+`)

// spaceBeforePunctRe matches the space a marker removal leaves in front of
// punctuation.
var spaceBeforePunctRe = regexp.MustCompile(`\s+([,.;:!?])`)

func collapseWhitespace(text string) string {
	text = spaceRe.ReplaceAllString(text, " ")
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// removeQuoteWrapping strips a matching pair of outer quotes when the entire
// text is wrapped in them.  Supported pairs:
//
//	"…"  '…'  «…»  "…"  '…'
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
