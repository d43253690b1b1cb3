package capability

import "context"

// SpeechBackend is the subset of the backend client used for server-side
// speech, satisfied by *backend.Client.
type SpeechBackend interface {
	SpeechToText(ctx context.Context) (string, error)
	TextToSpeech(ctx context.Context, text, voice string) error
}

// BackendRecognizer captures speech through the backend's /speech-to-text
// endpoint. The language hint is not sent; the backend picks its own model.
type BackendRecognizer struct {
	backend SpeechBackend
}

func NewBackendRecognizer(b SpeechBackend) *BackendRecognizer {
	return &BackendRecognizer{backend: b}
}

func (r *BackendRecognizer) Recognize(ctx context.Context, _ string) (string, error) {
	return r.backend.SpeechToText(ctx)
}

// BackendSynthesizer plays speech through the backend's /text-to-speech
// endpoint. Only the voice hint is forwarded.
type BackendSynthesizer struct {
	backend SpeechBackend
}

func NewBackendSynthesizer(b SpeechBackend) *BackendSynthesizer {
	return &BackendSynthesizer{backend: b}
}

func (s *BackendSynthesizer) Speak(ctx context.Context, text, _, voice string) error {
	return s.backend.TextToSpeech(ctx, text, voice)
}
