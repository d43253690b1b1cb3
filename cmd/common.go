/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"go.uber.org/zap"

	"github.com/valpere/medtran/internal/backend"
	"github.com/valpere/medtran/internal/capability"
	"github.com/valpere/medtran/internal/config"
	"github.com/valpere/medtran/internal/detector"
	"github.com/valpere/medtran/internal/language"
	"github.com/valpere/medtran/internal/logging"
	"github.com/valpere/medtran/internal/session"
	"github.com/valpere/medtran/internal/validator"
)

// app bundles everything a subcommand needs.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     *backend.Client
	caps       capability.Set
	controller *session.Controller
}

// loadConfig merges .env, the config file, MEDTRAN_* variables and the
// persistent flags, then validates the result.
func loadConfig() (*config.Config, error) {
	v, err := config.NewViper(configFile, ".env")
	if err != nil {
		return nil, err
	}
	if backendURL != "" {
		v.Set("backend_url", backendURL)
	}
	if logLevel != "" {
		v.Set("log.level", logLevel)
	}
	if logFormat != "" {
		v.Set("log.format", logFormat)
	}
	return config.Load(v)
}

// newApp builds the backend client, capabilities and session controller.
// checkLanguage attaches the language validator to translations.
func newApp(checkLanguage bool, opts ...session.Option) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	client, err := backend.New(cfg.BackendURL,
		backend.WithTimeout(cfg.Timeout),
		backend.WithLogger(logger.Named("backend")))
	if err != nil {
		return nil, err
	}

	caps := buildCapabilities(cfg.Speech, client, logger)

	base := []session.Option{
		session.WithLogger(logger),
		session.WithLanguage(cfg.Language),
		session.WithVoice(cfg.Voice),
		session.WithRecognitionLanguage(cfg.Speech.RecognitionLanguage),
	}
	if checkLanguage {
		det := detector.New(language.Codes()...)
		base = append(base, session.WithChecker(validator.New(det)))
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		client:     client,
		caps:       caps,
		controller: session.New(client, caps, append(base, opts...)...),
	}, nil
}

// buildCapabilities resolves the configured speech modes. A command whose
// binary cannot be found leaves that capability unavailable.
func buildCapabilities(sc config.SpeechConfig, client *backend.Client, logger *zap.Logger) capability.Set {
	var caps capability.Set

	switch sc.Recognizer {
	case config.ModeBackend:
		caps.Recognition = capability.NewBackendRecognizer(client)
	case config.ModeCommand:
		rec, err := capability.NewCommandRecognizer(sc.RecognizerCommand)
		if err != nil {
			logger.Warn("speech recognition disabled", zap.Error(err))
		} else {
			caps.Recognition = rec
		}
	}

	switch sc.Synthesizer {
	case config.ModeBackend:
		caps.Synthesis = capability.NewBackendSynthesizer(client)
	case config.ModeCommand:
		syn, err := capability.NewCommandSynthesizer(sc.SynthesizerCommand)
		if err != nil {
			logger.Warn("speech synthesis disabled", zap.Error(err))
		} else {
			caps.Synthesis = syn
		}
	}

	logger.Debug("capabilities resolved",
		zap.Stringer("recognition", capability.RecognitionStatus(caps)),
		zap.Stringer("synthesis", capability.SynthesisStatus(caps)))
	return caps
}
