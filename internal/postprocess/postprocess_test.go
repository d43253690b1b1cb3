package postprocess

import "testing"

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain transcript",
			input:    "I have chest pain.",
			expected: "I have chest pain.",
		},
		{
			name:     "extra whitespace",
			input:    "  I have   chest\tpain \n",
			expected: "I have chest pain",
		},
		{
			name:     "blank audio markers",
			input:    "[BLANK_AUDIO] I feel dizzy [BLANK_AUDIO]",
			expected: "I feel dizzy",
		},
		{
			name:     "only a marker",
			input:    "[BLANK_AUDIO]",
			expected: "",
		},
		{
			name:     "lowercase paren annotation",
			input:    "My head hurts (coughs) a lot.",
			expected: "My head hurts a lot.",
		},
		{
			name:     "marker before punctuation",
			input:    "It started yesterday [Music].",
			expected: "It started yesterday.",
		},
		{
			name:     "asterisk annotation",
			input:    "*laughs* okay",
			expected: "okay",
		},
		{
			name:     "laterality kept",
			input:    "Pain in the arm (left arm).",
			expected: "Pain in the arm (left arm).",
		},
		{
			name:     "numeric parenthetical kept",
			input:    "BP is (120 over 80)",
			expected: "BP is (120 over 80)",
		},
		{
			name:     "double quote wrapping",
			input:    `"I need a doctor"`,
			expected: "I need a doctor",
		},
		{
			name:     "curly quote wrapping",
			input:    "“Call an ambulance”",
			expected: "Call an ambulance",
		},
		{
			name:     "inner quotes kept",
			input:    `He said "now" twice`,
			expected: `He said "now" twice`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanTranscript(tt.input)
			if result != tt.expected {
				t.Errorf("CleanTranscript(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanTranscript_NFC(t *testing.T) {
	decomposed := "café"
	want := "café"

	if got := CleanTranscript(decomposed); got != want {
		t.Errorf("expected NFC %q, got %q", want, got)
	}
}

func TestRemoveQuoteWrapping_Short(t *testing.T) {
	if got := removeQuoteWrapping(`"`); got != `"` {
		t.Errorf("single rune should pass through, got %q", got)
	}
}
