package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/medtran/internal/capability"
	"github.com/valpere/medtran/internal/session"
)

// scriptedReader returns queued errors first, then lines, then io.EOF.
type scriptedReader struct {
	lines []string
	errs  []error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type echoBackend struct{}

func (echoBackend) Translate(ctx context.Context, text, language string) (string, error) {
	return language + ":" + text, nil
}

func (echoBackend) Refine(ctx context.Context, text string) (string, error) {
	return "Refined " + text, nil
}

func runShell(t *testing.T, caps capability.Provider, lines ...string) (*session.Controller, string) {
	t.Helper()
	ctrl := session.New(echoBackend{}, caps)
	out := &syncBuffer{}
	sh := New(context.Background(), ctrl, &scriptedReader{lines: lines}, out)
	require.NoError(t, sh.Run())
	return ctrl, out.String()
}

func TestShell_TranslateAndRefine(t *testing.T) {
	ctrl, out := runShell(t, capability.None(),
		"I have a fever",
		"/lang fr",
		"/translate",
		"/refine",
		"/quit",
		"never read",
	)

	st := ctrl.State()
	assert.Equal(t, "I have a fever", st.InputText)
	assert.Equal(t, "fr", st.TargetLanguage)
	assert.Equal(t, "fr:I have a fever", st.TranslatedText)
	assert.Equal(t, "Refined I have a fever", st.RefinedText)

	assert.Contains(t, out, "Target language: fr (French)")
	assert.Contains(t, out, "Translated Text: fr:I have a fever")
	assert.Contains(t, out, "Refined Medical Text: Refined I have a fever")
}

func TestShell_TranslateWithLanguageArgument(t *testing.T) {
	ctrl, out := runShell(t, capability.None(), "cough", "/translate de", "/translate en")

	assert.Equal(t, "de:cough", ctrl.State().TranslatedText)
	assert.Equal(t, "es", ctrl.State().TargetLanguage, "argument does not change the session language")
	assert.Contains(t, out, `Unsupported language "en"`)
}

func TestShell_EmptyInputGuards(t *testing.T) {
	_, out := runShell(t, capability.None(), "/translate", "/refine", "/speak")

	assert.Contains(t, out, "Nothing to translate")
	assert.Contains(t, out, "Nothing to refine")
	assert.Contains(t, out, "Nothing to speak")
}

func TestShell_ListenUnsupported(t *testing.T) {
	ctrl, out := runShell(t, capability.None(), "/listen")

	assert.Equal(t, session.NoticeRecognitionUnsupported, ctrl.State().Notice)
	assert.Contains(t, out, "! "+session.NoticeRecognitionUnsupported)
	assert.NotContains(t, out, "Listening...")
}

func TestShell_ListenAndSpeak(t *testing.T) {
	var spoken string
	var mu sync.Mutex
	caps := capability.Set{
		Recognition: capability.RecognizerFunc(func(ctx context.Context, lang string) (string, error) {
			return "my knee is swollen", nil
		}),
		Synthesis: capability.SynthesizerFunc(func(ctx context.Context, text, lang, voice string) error {
			mu.Lock()
			spoken = text
			mu.Unlock()
			return nil
		}),
	}

	ctrl := session.New(echoBackend{}, caps)
	out := &syncBuffer{}
	sh := New(context.Background(), ctrl, &scriptedReader{}, out)

	sh.Handle("/listen")
	ctrl.Wait()
	assert.Equal(t, "my knee is swollen", ctrl.State().InputText)

	sh.Handle("/translate")
	ctrl.Wait()
	sh.Handle("/speak")
	ctrl.Wait()

	mu.Lock()
	assert.Equal(t, "es:my knee is swollen", spoken)
	mu.Unlock()

	assert.Contains(t, out.String(), "Listening...")
	assert.Contains(t, out.String(), "Transcription: my knee is swollen")
}

func TestShell_StateHelpUnknown(t *testing.T) {
	_, out := runShell(t, capability.None(), "/state", "/help", "/bogus", "/languages", "/lang", "/lang xx")

	assert.Contains(t, out, "Translation will appear here...")
	assert.Contains(t, out, "/translate [code]")
	assert.Contains(t, out, "Unknown command /bogus")
	assert.Contains(t, out, "es  Spanish")
	assert.Contains(t, out, "Target language: es (Spanish)")
	assert.Contains(t, out, "see /languages")
}

func TestShell_Run_InterruptAndError(t *testing.T) {
	ctrl := session.New(echoBackend{}, capability.None())
	reader := &scriptedReader{
		lines: []string{"hello"},
		errs:  []error{readline.ErrInterrupt},
	}
	sh := New(context.Background(), ctrl, reader, &syncBuffer{})
	require.NoError(t, sh.Run())
	assert.Equal(t, "hello", ctrl.State().InputText)

	boom := errors.New("terminal gone")
	sh = New(context.Background(), ctrl, &scriptedReader{errs: []error{boom}}, &syncBuffer{})
	assert.ErrorIs(t, sh.Run(), boom)
}

type languageBackend struct{ echoBackend }

func (languageBackend) Translate(ctx context.Context, text, language string) (string, error) {
	return "T-" + language, nil
}

func TestShell_OverlappingTranslatesRenderNewest(t *testing.T) {
	ctrl := session.New(languageBackend{}, capability.None())

	// A listener registered ahead of the shell stalls the first result, so its
	// snapshot reaches the shell after the second one.
	held := make(chan struct{})
	release := make(chan struct{})
	ctrl.Subscribe(func(st session.State) {
		if st.TranslatedText == "T-fr" {
			close(held)
			<-release
		}
	})

	out := &syncBuffer{}
	New(context.Background(), ctrl, &scriptedReader{}, out)

	ctrl.Submit(func() { ctrl.Translate(context.Background(), "fever", "fr") })
	<-held
	ctrl.Translate(context.Background(), "fever", "de")
	close(release)
	ctrl.Wait()

	assert.Equal(t, "T-de", ctrl.State().TranslatedText)

	var rendered []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Translated Text:") {
			rendered = append(rendered, line)
		}
	}
	assert.Equal(t, []string{"Translated Text: T-de"}, rendered)
}
