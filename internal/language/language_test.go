package language

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"es", "es", false},
		{"ES", "es", false},
		{" fr ", "fr", false},
		{"fr-CA", "fr", false},
		{"de-DE", "de", false},
		{"uk", "uk", false},
		{"en", "", true},
		{"xx-invalid-###", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.in, got)
				}
				if !errors.Is(err, ErrUnsupported) {
					t.Errorf("expected ErrUnsupported, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSupported_IncludesDefault(t *testing.T) {
	langs := Supported()
	if len(langs) != len(Codes()) {
		t.Fatalf("Supported and Codes disagree: %d vs %d", len(langs), len(Codes()))
	}

	found := false
	for _, l := range langs {
		if l.Code == Default {
			found = true
			if l.Name != "Spanish" {
				t.Errorf("expected display name 'Spanish', got %q", l.Name)
			}
		}
	}
	if !found {
		t.Errorf("default language %q missing from supported set", Default)
	}
}

func TestName(t *testing.T) {
	if got := Name("de"); got != "German" {
		t.Errorf("expected 'German', got %q", got)
	}
	if got := Name("###"); got != "###" {
		t.Errorf("expected passthrough for unparsable code, got %q", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("fr") {
		t.Error("expected fr to be supported")
	}
	if IsSupported("en") {
		t.Error("expected en to be unsupported as a target")
	}
}
