// Package config loads medtran settings from flags, environment, .env and an
// optional YAML file. The backend base URL is the only required value.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/medtran/internal/language"
)

// EnvPrefix is prepended to every environment key, e.g. MEDTRAN_BACKEND_URL.
const EnvPrefix = "MEDTRAN"

// ErrMissingBackendURL is returned when no backend base URL is configured.
var ErrMissingBackendURL = errors.New("backend_url is required (set MEDTRAN_BACKEND_URL or --backend-url)")

// Capability modes for speech recognition and synthesis.
const (
	ModeBackend = "backend"
	ModeCommand = "command"
	ModeNone    = "none"
)

type SpeechConfig struct {
	Recognizer          string   `mapstructure:"recognizer"`
	RecognizerCommand   []string `mapstructure:"recognizer_command"`
	Synthesizer         string   `mapstructure:"synthesizer"`
	SynthesizerCommand  []string `mapstructure:"synthesizer_command"`
	RecognitionLanguage string   `mapstructure:"recognition_language"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	BackendURL string        `mapstructure:"backend_url"`
	Language   string        `mapstructure:"language"`
	Voice      string        `mapstructure:"voice"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Log        LogConfig     `mapstructure:"log"`
	Speech     SpeechConfig  `mapstructure:"speech"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", language.Default)
	v.SetDefault("voice", "male")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("speech.recognizer", ModeBackend)
	v.SetDefault("speech.recognizer_command", []string{})
	v.SetDefault("speech.synthesizer", ModeBackend)
	v.SetDefault("speech.synthesizer_command", []string{"espeak-ng", "-v", "{lang}", "--stdin"})
	v.SetDefault("speech.recognition_language", "en-US")
}

// NewViper returns a viper instance wired to the MEDTRAN_ environment and,
// when configFile is non-empty, to that YAML file. Values in dotenvFiles are
// exported into the process environment first; missing files are ignored.
func NewViper(configFile string, dotenvFiles ...string) (*viper.Viper, error) {
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	// AutomaticEnv does not reach Unmarshal for keys without a default.
	cfg.BackendURL = v.GetString("backend_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required values and normalizes the rest in place.
func (c *Config) Validate() error {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		return ErrMissingBackendURL
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend_url %q: %w", c.BackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: must be an absolute http(s) URL", c.BackendURL)
	}

	lang, err := language.Normalize(c.Language)
	if err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}
	c.Language = lang

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	for name, mode := range map[string]string{
		"speech.recognizer":  c.Speech.Recognizer,
		"speech.synthesizer": c.Speech.Synthesizer,
	} {
		switch mode {
		case ModeBackend, ModeCommand, ModeNone:
		default:
			return fmt.Errorf("invalid %s %q: want %s, %s or %s", name, mode, ModeBackend, ModeCommand, ModeNone)
		}
	}
	if c.Speech.Recognizer == ModeCommand && len(c.Speech.RecognizerCommand) == 0 {
		return fmt.Errorf("speech.recognizer_command is required when speech.recognizer is %q", ModeCommand)
	}
	if c.Speech.Synthesizer == ModeCommand && len(c.Speech.SynthesizerCommand) == 0 {
		return fmt.Errorf("speech.synthesizer_command is required when speech.synthesizer is %q", ModeCommand)
	}
	return nil
}
