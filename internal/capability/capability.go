// Package capability defines the device speech collaborators a session
// consumes: one-shot speech capture and speech playback.
package capability

import "context"

// Recognizer captures one utterance and returns its transcript.
type Recognizer interface {
	Recognize(ctx context.Context, languageHint string) (string, error)
}

// Synthesizer plays text aloud.
type Synthesizer interface {
	Speak(ctx context.Context, text, languageHint, voice string) error
}

// Status is whether a capability is present.
type Status int

const (
	Unavailable Status = iota
	Available
)

func (s Status) String() string {
	if s == Available {
		return "available"
	}
	return "unavailable"
}

// Provider hands out capabilities. A false second return means Unavailable.
type Provider interface {
	Recognizer() (Recognizer, bool)
	Synthesizer() (Synthesizer, bool)
}

// Set is a Provider backed by fixed values; a nil field is Unavailable.
type Set struct {
	Recognition Recognizer
	Synthesis   Synthesizer
}

// None returns a provider with every capability unavailable.
func None() Set {
	return Set{}
}

func (s Set) Recognizer() (Recognizer, bool) {
	return s.Recognition, s.Recognition != nil
}

func (s Set) Synthesizer() (Synthesizer, bool) {
	return s.Synthesis, s.Synthesis != nil
}

// RecognitionStatus reports the recognition variant of p.
func RecognitionStatus(p Provider) Status {
	if _, ok := p.Recognizer(); ok {
		return Available
	}
	return Unavailable
}

// SynthesisStatus reports the synthesis variant of p.
func SynthesisStatus(p Provider) Status {
	if _, ok := p.Synthesizer(); ok {
		return Available
	}
	return Unavailable
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ctx context.Context, languageHint string) (string, error)

func (f RecognizerFunc) Recognize(ctx context.Context, languageHint string) (string, error) {
	return f(ctx, languageHint)
}

// SynthesizerFunc adapts a function to Synthesizer.
type SynthesizerFunc func(ctx context.Context, text, languageHint, voice string) error

func (f SynthesizerFunc) Speak(ctx context.Context, text, languageHint, voice string) error {
	return f(ctx, text, languageHint, voice)
}
