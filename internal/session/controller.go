// Package session implements the translation session controller: in-memory
// UI state plus the translate, refine, listen and speak operations.
//
// Every operation writes only its own fields, under the controller lock, when
// it completes. Concurrent operations therefore never clobber each other's
// results, and repeated triggers of the same operation resolve as
// last-to-complete wins. Failures are logged and turned into placeholders or
// notices; they are never returned to the caller.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/valpere/medtran/internal/backend"
	"github.com/valpere/medtran/internal/capability"
	"github.com/valpere/medtran/internal/language"
	"github.com/valpere/medtran/internal/postprocess"
)

// ErrAlreadyListening rejects a capture request while one is pending.
var ErrAlreadyListening = errors.New("speech capture already in progress")

// Backend is the translation backend, satisfied by *backend.Client.
type Backend interface {
	Translate(ctx context.Context, text, language string) (string, error)
	Refine(ctx context.Context, text string) (string, error)
}

// Checker inspects a successful translation, satisfied by
// *validator.Validator.
type Checker interface {
	IsValid(translatedText, targetLang string) (bool, error)
}

// Listener receives a state snapshot after every change.
type Listener func(State)

type Controller struct {
	backend      Backend
	capabilities capability.Provider
	checker      Checker
	logger       *zap.Logger

	// recognitionLang is the capture language hint; input is spoken in it.
	recognitionLang string
	voice           string

	mu        sync.Mutex
	state     State
	listeners []Listener

	wg sync.WaitGroup
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithChecker(ch Checker) Option {
	return func(c *Controller) { c.checker = ch }
}

// WithLanguage sets the initial target language. Unsupported codes are
// ignored and the default is kept.
func WithLanguage(code string) Option {
	return func(c *Controller) {
		if norm, err := language.Normalize(code); err == nil {
			c.state.TargetLanguage = norm
		}
	}
}

// WithVoice sets the default voice hint for Speak.
func WithVoice(voice string) Option {
	return func(c *Controller) { c.voice = voice }
}

// WithRecognitionLanguage sets the language hint passed to the recognizer.
func WithRecognitionLanguage(lang string) Option {
	return func(c *Controller) { c.recognitionLang = lang }
}

func WithListener(l Listener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, l) }
}

// New creates a controller with default state. A nil provider means no
// capability is available.
func New(b Backend, caps capability.Provider, opts ...Option) *Controller {
	if caps == nil {
		caps = capability.None()
	}
	c := &Controller{
		backend:         b,
		capabilities:    caps,
		logger:          zap.NewNop(),
		recognitionLang: "en-US",
		voice:           "male",
		state:           State{TargetLanguage: language.Default},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("session")
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers l for future state changes.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// SetInput replaces the input text.
func (c *Controller) SetInput(text string) {
	c.update(func(s *State) { s.InputText = text })
}

// SetLanguage changes the target language. The state keeps its previous
// language when code is outside the supported set.
func (c *Controller) SetLanguage(code string) error {
	norm, err := language.Normalize(code)
	if err != nil {
		return err
	}
	c.update(func(s *State) { s.TargetLanguage = norm })
	return nil
}

// Submit runs op on its own goroutine. It is the fire-and-forget trigger for
// the blocking operations below.
func (c *Controller) Submit(op func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		op()
	}()
}

// Wait blocks until every submitted operation has returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Translate sends text to the backend for translation into lang and stores
// the result in TranslatedText. Blank text is ignored.
func (c *Controller) Translate(ctx context.Context, text, lang string) {
	log := c.logger.With(zap.String("op", "translate"), zap.String("language", lang))

	if strings.TrimSpace(text) == "" {
		log.Debug("skipping translate: empty input")
		return
	}

	code, err := language.Normalize(lang)
	if err != nil {
		log.Warn("translate rejected", zap.Error(err))
		c.update(func(s *State) {
			s.TranslatedText = TranslationFailed
			s.TranslationErr = err
		})
		return
	}

	translated, err := c.backend.Translate(ctx, text, code)
	if err != nil {
		log.Error("translation failed", zap.Error(err))
		placeholder := TranslationError
		if backend.IsRejected(err) {
			placeholder = TranslationFailed
		}
		c.update(func(s *State) {
			s.TranslatedText = placeholder
			s.TranslationErr = err
		})
		return
	}

	if c.checker != nil {
		if ok, cerr := c.checker.IsValid(translated, code); !ok {
			log.Warn("translation may not be in target language", zap.Error(cerr))
		}
	}

	c.update(func(s *State) {
		s.TranslatedText = translated
		s.TranslationErr = nil
	})
}

// Refine sends text to the backend's medical refinement and stores the
// result in RefinedText. Blank text is ignored.
func (c *Controller) Refine(ctx context.Context, text string) {
	log := c.logger.With(zap.String("op", "refine"))

	if strings.TrimSpace(text) == "" {
		log.Debug("skipping refine: empty input")
		return
	}

	refined, err := c.backend.Refine(ctx, text)
	if err != nil {
		log.Error("refinement failed", zap.Error(err))
		placeholder := RefinementError
		if backend.IsRejected(err) {
			placeholder = RefinementFailed
		}
		c.update(func(s *State) {
			s.RefinedText = placeholder
			s.RefinementErr = err
		})
		return
	}

	c.update(func(s *State) {
		s.RefinedText = refined
		s.RefinementErr = nil
	})
}

// Listen captures one utterance and stores the cleaned transcript as both
// the input text and the transcription. It returns ErrAlreadyListening when
// a capture is pending; every other outcome is reported through State.
func (c *Controller) Listen(ctx context.Context) error {
	log := c.logger.With(zap.String("op", "listen"))

	rec, ok := c.capabilities.Recognizer()
	if !ok {
		log.Warn("speech recognition unavailable")
		c.update(func(s *State) { s.Notice = NoticeRecognitionUnsupported })
		return nil
	}

	c.mu.Lock()
	if c.state.Listening {
		c.mu.Unlock()
		return ErrAlreadyListening
	}
	c.state.Listening = true
	c.state.Notice = ""
	c.state.Version++
	snap, listeners := c.state, c.listeners
	c.mu.Unlock()
	notify(listeners, snap)

	transcript, err := rec.Recognize(ctx, c.recognitionLang)
	if err != nil {
		log.Error("speech recognition failed", zap.Error(err))
		c.update(func(s *State) {
			s.Listening = false
			s.Notice = NoticeRecognitionError
		})
		return nil
	}

	transcript = postprocess.CleanTranscript(transcript)
	c.update(func(s *State) {
		s.Listening = false
		s.InputText = transcript
		s.Transcription = transcript
	})
	return nil
}

// Speak plays text through the synthesis capability in the current target
// language. An empty voice uses the configured default. Blank text is
// ignored.
func (c *Controller) Speak(ctx context.Context, text, voice string) {
	log := c.logger.With(zap.String("op", "speak"))

	if strings.TrimSpace(text) == "" {
		log.Debug("skipping speak: empty text")
		return
	}

	syn, ok := c.capabilities.Synthesizer()
	if !ok {
		log.Warn("speech synthesis unavailable")
		c.update(func(s *State) { s.Notice = NoticeSynthesisUnsupported })
		return
	}

	if voice == "" {
		voice = c.voice
	}
	lang := c.State().TargetLanguage

	if err := syn.Speak(ctx, text, lang, voice); err != nil {
		log.Error("speech synthesis failed", zap.Error(err), zap.String("voice", voice))
		c.update(func(s *State) { s.Notice = NoticeSynthesisError })
	}
}

// update applies fn under the lock and notifies listeners with the result.
// Listeners run outside the lock, so snapshots from concurrent updates may
// arrive out of order; State.Version orders them.
func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	c.state.Version++
	snap, listeners := c.state, c.listeners
	c.mu.Unlock()
	notify(listeners, snap)
}

func notify(listeners []Listener, s State) {
	for _, l := range listeners {
		l(s)
	}
}
