package validator

import (
	"strings"
	"testing"

	"github.com/valpere/medtran/internal/detector"
)

// One detector for the whole file; building it loads language models.
var testDetector = detector.New("es", "fr", "de", "uk")

func TestIsValid_EmptyTargetLang(t *testing.T) {
	v := New(testDetector)

	valid, err := v.IsValid("Some translated text", "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for empty targetLang")
	}
}

func TestIsValid_EmptyTranslation(t *testing.T) {
	v := New(testDetector)

	valid, err := v.IsValid("   ", "es")
	if err == nil {
		t.Error("expected error for whitespace-only translation")
	}
	if valid {
		t.Error("expected valid=false for whitespace-only translation")
	}
}

func TestIsValid_ShortText(t *testing.T) {
	v := New(testDetector)

	valid, err := v.IsValid("Dolor", "fr")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for short text (below threshold)")
	}
}

func TestIsValid_SpanishAsSpanish(t *testing.T) {
	v := New(testDetector)

	text := "El paciente tiene fiebre alta y dolor abdominal desde ayer."
	valid, err := v.IsValid(text, "ES")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true when detecting Spanish as Spanish")
	}
}

func TestIsValid_UntranslatedEnglish(t *testing.T) {
	v := New(testDetector)

	text := "The patient has a high fever and abdominal pain since yesterday."
	valid, err := v.IsValid(text, "de")
	if err == nil {
		t.Fatal("expected error for mismatched language")
	}
	if valid {
		t.Error("expected valid=false when detecting English but expecting German")
	}
	if !strings.Contains(err.Error(), "expected de but detected en") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestIsValid_DoseOnlyTextSkipsDetection(t *testing.T) {
	v := New(testDetector)

	// Long in runes, but only the drug name carries language.
	valid, err := v.IsValid("Paracetamol 500 mg PO BID, 1000 mg IV PRN", "fr")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for text made of doses and abbreviations")
	}
}

func TestLexicalWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Dolor de cabeza", 3},
		{"500 mg IV", 0},
		{"Tome 2 comprimidos cada 8 horas", 4},
		{"BP 120/80 mmHg, 72 bpm", 1},
		{"頭痛がします", 6},
	}
	for _, tt := range tests {
		if got := lexicalWords(tt.text); got != tt.want {
			t.Errorf("lexicalWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
