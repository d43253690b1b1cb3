package capability

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Placeholders substituted in command arguments.
const (
	LangPlaceholder  = "{lang}"
	VoicePlaceholder = "{voice}"
)

type command struct {
	binaryPath string
	args       []string
}

func newCommand(argv []string) (command, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return command{}, fmt.Errorf("empty command")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return command{}, fmt.Errorf("%s not found: %w", argv[0], err)
	}
	return command{binaryPath: path, args: argv[1:]}, nil
}

func (c command) expand(lang, voice string) []string {
	r := strings.NewReplacer(LangPlaceholder, lang, VoicePlaceholder, voice)
	out := make([]string, len(c.args))
	for i, a := range c.args {
		out[i] = r.Replace(a)
	}
	return out
}

func (c command) run(ctx context.Context, stdin string, lang, voice string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binaryPath, c.expand(lang, voice)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w\nStderr: %s", c.binaryPath, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// CommandRecognizer runs a local program that records one utterance and
// prints its transcript on stdout, e.g. a whisper.cpp wrapper script.
type CommandRecognizer struct {
	cmd command
}

// NewCommandRecognizer resolves argv[0] on PATH. Arguments may contain
// {lang}, replaced with the recognition language hint.
func NewCommandRecognizer(argv []string) (*CommandRecognizer, error) {
	c, err := newCommand(argv)
	if err != nil {
		return nil, fmt.Errorf("speech recognizer: %w", err)
	}
	return &CommandRecognizer{cmd: c}, nil
}

func (r *CommandRecognizer) Recognize(ctx context.Context, languageHint string) (string, error) {
	out, err := r.cmd.run(ctx, "", languageHint, "")
	if err != nil {
		return "", err
	}
	transcript := strings.TrimSpace(out)
	if transcript == "" {
		return "", fmt.Errorf("no speech detected")
	}
	return transcript, nil
}

// CommandSynthesizer pipes text into a local TTS program such as
// `espeak-ng -v {lang} --stdin`.
type CommandSynthesizer struct {
	cmd command
}

// NewCommandSynthesizer resolves argv[0] on PATH. Arguments may contain
// {lang} and {voice}.
func NewCommandSynthesizer(argv []string) (*CommandSynthesizer, error) {
	c, err := newCommand(argv)
	if err != nil {
		return nil, fmt.Errorf("speech synthesizer: %w", err)
	}
	return &CommandSynthesizer{cmd: c}, nil
}

func (s *CommandSynthesizer) Speak(ctx context.Context, text, languageHint, voice string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	_, err := s.cmd.run(ctx, text, languageHint, voice)
	return err
}
