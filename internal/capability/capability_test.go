package capability

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

type fakeSpeechBackend struct {
	transcription string
	err           error
	spokenText    string
	spokenVoice   string
}

func (f *fakeSpeechBackend) SpeechToText(ctx context.Context) (string, error) {
	return f.transcription, f.err
}

func (f *fakeSpeechBackend) TextToSpeech(ctx context.Context, text, voice string) error {
	f.spokenText = text
	f.spokenVoice = voice
	return f.err
}

func TestNone(t *testing.T) {
	p := None()

	if _, ok := p.Recognizer(); ok {
		t.Error("expected recognizer to be unavailable")
	}
	if _, ok := p.Synthesizer(); ok {
		t.Error("expected synthesizer to be unavailable")
	}
	if RecognitionStatus(p) != Unavailable || SynthesisStatus(p) != Unavailable {
		t.Error("expected both statuses Unavailable")
	}
}

func TestSet_Available(t *testing.T) {
	p := Set{
		Recognition: RecognizerFunc(func(ctx context.Context, lang string) (string, error) { return "ok", nil }),
	}

	if RecognitionStatus(p) != Available {
		t.Error("expected recognition Available")
	}
	if SynthesisStatus(p) != Unavailable {
		t.Error("expected synthesis Unavailable")
	}
	if Available.String() != "available" || Unavailable.String() != "unavailable" {
		t.Error("unexpected Status strings")
	}
}

func TestBackendRecognizer(t *testing.T) {
	fb := &fakeSpeechBackend{transcription: "fever and chills"}
	r := NewBackendRecognizer(fb)

	got, err := r.Recognize(context.Background(), "en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fever and chills" {
		t.Errorf("unexpected transcript %q", got)
	}

	fb.err = errors.New("boom")
	if _, err := r.Recognize(context.Background(), "en-US"); err == nil {
		t.Error("expected backend error to propagate")
	}
}

func TestBackendSynthesizer(t *testing.T) {
	fb := &fakeSpeechBackend{}
	s := NewBackendSynthesizer(fb)

	if err := s.Speak(context.Background(), "Hola", "es", "female"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.spokenText != "Hola" || fb.spokenVoice != "female" {
		t.Errorf("unexpected call text=%q voice=%q", fb.spokenText, fb.spokenVoice)
	}
}

func TestNewCommandRecognizer_MissingBinary(t *testing.T) {
	_, err := NewCommandRecognizer([]string{"/nonexistent/whisper-listen"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' in error, got %v", err)
	}

	if _, err := NewCommandRecognizer(nil); err == nil {
		t.Error("expected error for empty argv")
	}
}

func TestCommandRecognizer_Recognize(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	r, err := NewCommandRecognizer([]string{"echo", "heard in {lang}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Recognize(context.Background(), "en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "heard in en-US" {
		t.Errorf("expected 'heard in en-US', got %q", got)
	}
}

func TestCommandRecognizer_NoSpeech(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	r, err := NewCommandRecognizer([]string{"true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Recognize(context.Background(), "en-US"); err == nil {
		t.Error("expected error for empty transcript")
	}
}

func TestCommandSynthesizer_Speak(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	s, err := NewCommandSynthesizer([]string{"cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Speak(context.Background(), "Bonjour", "fr", "male"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := s.Speak(context.Background(), "", "fr", "male"); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestCommandSynthesizer_Failure(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	s, err := NewCommandSynthesizer([]string{"false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Speak(context.Background(), "Hallo", "de", "male"); err == nil {
		t.Error("expected error from failing command")
	}
}

func TestCommand_Expand(t *testing.T) {
	c := command{binaryPath: "/usr/bin/say", args: []string{"-l", "{lang}", "--voice={voice}", "plain"}}

	got := c.expand("es", "female")
	want := []string{"-l", "es", "--voice=female", "plain"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expected %v, got %v", want, got)
	}
}
