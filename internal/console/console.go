// Package console is the interactive front end of a session: a line-based
// shell that edits the input text, triggers operations and renders results
// as they arrive.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/valpere/medtran/internal/language"
	"github.com/valpere/medtran/internal/session"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// NewReadline opens a readline prompt with history in ~/.medtran_history.
func NewReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "medtran> ",
		HistoryFile:     historyFilePath(),
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

func historyFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "medtran_history")
	}
	return filepath.Join(homeDir, ".medtran_history")
}

// Shell reads commands and drives a session controller. Operations run in
// the background; their results are printed as they complete.
type Shell struct {
	ctrl *session.Controller
	in   LineReader
	ctx  context.Context

	mu   sync.Mutex
	out  io.Writer
	last session.State
}

// New creates a shell and subscribes it to ctrl's state changes. ctx is
// handed to every operation the shell triggers.
func New(ctx context.Context, ctrl *session.Controller, in LineReader, out io.Writer) *Shell {
	s := &Shell{
		ctrl: ctrl,
		in:   in,
		ctx:  ctx,
		out:  out,
		last: ctrl.State(),
	}
	ctrl.Subscribe(s.render)
	return s
}

// Run processes lines until /quit or EOF, then waits for in-flight
// operations to finish.
func (s *Shell) Run() error {
	s.printf("Healthcare translation session. Type text to set the input, /help for commands.\n")
	defer s.ctrl.Wait()

	for {
		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return err
		}
		if quit := s.Handle(line); quit {
			return nil
		}
	}
}

// Handle executes one input line and reports whether the shell should exit.
func (s *Shell) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		s.ctrl.SetInput(line)
		return false
	}

	name, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "quit", "exit", "q":
		return true
	case "help", "h", "?":
		s.printHelp()
	case "lang", "language":
		if arg == "" {
			st := s.ctrl.State()
			s.printf("Target language: %s (%s)\n", st.TargetLanguage, language.Name(st.TargetLanguage))
			return false
		}
		if err := s.ctrl.SetLanguage(arg); err != nil {
			s.printf("%v; see /languages\n", err)
		}
	case "languages":
		for _, l := range language.Supported() {
			s.printf("  %s  %s\n", l.Code, l.Name)
		}
	case "translate", "t":
		st := s.ctrl.State()
		if strings.TrimSpace(st.InputText) == "" {
			s.printf("Nothing to translate. Type or dictate some text first.\n")
			return false
		}
		lang := st.TargetLanguage
		if arg != "" {
			if !language.IsSupported(arg) {
				s.printf("Unsupported language %q; see /languages\n", arg)
				return false
			}
			lang = arg
		}
		s.ctrl.Submit(func() { s.ctrl.Translate(s.ctx, st.InputText, lang) })
	case "refine", "r":
		text := s.ctrl.State().InputText
		if strings.TrimSpace(text) == "" {
			s.printf("Nothing to refine. Type or dictate some text first.\n")
			return false
		}
		s.ctrl.Submit(func() { s.ctrl.Refine(s.ctx, text) })
	case "listen", "l":
		s.ctrl.Submit(func() {
			if err := s.ctrl.Listen(s.ctx); err != nil {
				s.printf("%v\n", err)
			}
		})
	case "speak", "s":
		text := arg
		if text == "" {
			text = s.ctrl.State().TranslatedText
		}
		if text == "" {
			s.printf("Nothing to speak. Translate something first.\n")
			return false
		}
		s.ctrl.Submit(func() { s.ctrl.Speak(s.ctx, text, "") })
	case "state":
		s.printState(s.ctrl.State())
	default:
		s.printf("Unknown command /%s, type /help\n", name)
	}
	return false
}

// render prints whichever display fields changed since the last snapshot.
// Snapshots older than the last rendered one are dropped.
func (s *Shell) render(st session.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Version <= s.last.Version {
		return
	}
	prev := s.last
	s.last = st

	if st.Listening && !prev.Listening {
		fmt.Fprintln(s.out, "Listening...")
	}
	if st.Transcription != prev.Transcription && st.Transcription != "" {
		fmt.Fprintf(s.out, "Transcription: %s\n", st.Transcription)
	}
	if st.TranslatedText != prev.TranslatedText {
		fmt.Fprintf(s.out, "Translated Text: %s\n", st.TranslatedText)
	}
	if st.RefinedText != prev.RefinedText {
		fmt.Fprintf(s.out, "Refined Medical Text: %s\n", st.RefinedText)
	}
	if st.TargetLanguage != prev.TargetLanguage {
		fmt.Fprintf(s.out, "Target language: %s (%s)\n", st.TargetLanguage, language.Name(st.TargetLanguage))
	}
	if st.Notice != prev.Notice && st.Notice != "" {
		fmt.Fprintf(s.out, "! %s\n", st.Notice)
	}
}

func (s *Shell) printState(st session.State) {
	orDefault := func(v, placeholder string) string {
		if v == "" {
			return placeholder
		}
		return v
	}
	s.printf("Input:           %s\n", orDefault(st.InputText, "(empty)"))
	s.printf("Language:        %s (%s)\n", st.TargetLanguage, language.Name(st.TargetLanguage))
	s.printf("Translated Text: %s\n", orDefault(st.TranslatedText, "Translation will appear here..."))
	s.printf("Transcription:   %s\n", orDefault(st.Transcription, "(none)"))
	s.printf("Refined Text:    %s\n", orDefault(st.RefinedText, "Refined text will appear here..."))
	s.printf("Listening:       %v\n", st.Listening)
}

func (s *Shell) printHelp() {
	s.printf(`Commands:
  <text>             set the input text
  /translate [code]  translate the input (default: current target language)
  /refine            refine the input as a medical transcription
  /listen            dictate the input
  /speak [text]      play text aloud (default: the translation)
  /lang [code]       show or change the target language
  /languages         list supported languages
  /state             show the whole session
  /quit              leave
`)
}

func (s *Shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
