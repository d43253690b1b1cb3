// Package language holds the fixed set of target languages the backend
// translates into.
package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Default is the target language a new session starts with.
const Default = "es"

// ErrUnsupported is returned for codes outside the supported set.
var ErrUnsupported = errors.New("unsupported language")

var supported = []language.Tag{
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Russian,
	language.Arabic,
	language.Hindi,
	language.Japanese,
	language.Korean,
	language.Ukrainian,
}

// Language is a supported target language.
type Language struct {
	Code string
	Name string
}

// Supported returns the target languages in display order.
func Supported() []Language {
	names := display.English.Languages()
	out := make([]Language, 0, len(supported))
	for _, tag := range supported {
		base, _ := tag.Base()
		out = append(out, Language{Code: base.String(), Name: names.Name(tag)})
	}
	return out
}

// Codes returns the ISO 639-1 codes of the supported set.
func Codes() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	return out
}

// Normalize parses code (any case, optional region such as "fr-CA") and
// returns its canonical base code when it belongs to the supported set.
func Normalize(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnsupported)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	base, _ := tag.Base()
	for _, s := range supported {
		sb, _ := s.Base()
		if sb == base {
			return base.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, code)
}

// IsSupported reports whether code normalizes into the supported set.
func IsSupported(code string) bool {
	_, err := Normalize(code)
	return err == nil
}

// Name returns the English display name for code, or code itself when it
// cannot be parsed.
func Name(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}
