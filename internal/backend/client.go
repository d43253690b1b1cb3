// Package backend is the HTTP client for the healthcare translation backend:
// translation, transcription refinement and the backend speech endpoints.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PathTranslate    = "/translate"
	PathSpeechToText = "/speech-to-text"
	PathTextToSpeech = "/text-to-speech"
	PathRefine       = "/refine-transcription"
	PathHealth       = "/health"
	PathGreet        = "/greet"
)

// RequestIDHeader carries the per-request id used to correlate logs.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response body is kept.
const maxErrorBody = 4 << 10

type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil hc is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the HTTP client's own
// timeout. The client passed to WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the backend at baseURL, which must be an absolute
// http or https URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q: must be an absolute http(s) URL", baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Translate asks the backend to translate text into language.
func (c *Client) Translate(ctx context.Context, text, language string) (string, error) {
	var resp TranslateResponse
	if err := c.do(ctx, http.MethodPost, PathTranslate, TranslateRequest{Text: text, Language: language}, &resp); err != nil {
		return "", err
	}
	if resp.TranslatedText == "" {
		return "", fmt.Errorf("%s: %w", PathTranslate, ErrEmptyResult)
	}
	return resp.TranslatedText, nil
}

// Refine asks the backend to refine a medical transcription.
func (c *Client) Refine(ctx context.Context, text string) (string, error) {
	var resp RefineResponse
	if err := c.do(ctx, http.MethodPost, PathRefine, RefineRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	if resp.RefinedText == "" {
		return "", fmt.Errorf("%s: %w", PathRefine, ErrEmptyResult)
	}
	return resp.RefinedText, nil
}

// SpeechToText triggers server-side capture and returns its transcription.
func (c *Client) SpeechToText(ctx context.Context) (string, error) {
	var resp SpeechToTextResponse
	if err := c.do(ctx, http.MethodPost, PathSpeechToText, nil, &resp); err != nil {
		return "", err
	}
	if resp.Transcription == "" {
		return "", fmt.Errorf("%s: %w", PathSpeechToText, ErrEmptyResult)
	}
	return resp.Transcription, nil
}

// TextToSpeech asks the backend to play text with the given voice. The
// response body is not consumed.
func (c *Client) TextToSpeech(ctx context.Context, text, voice string) error {
	return c.do(ctx, http.MethodPost, PathTextToSpeech, TextToSpeechRequest{Text: text, Voice: voice}, nil)
}

// Health returns the backend's reported status.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// Greet returns the backend's time-of-day greeting.
func (c *Client) Greet(ctx context.Context) (string, error) {
	var resp GreetResponse
	if err := c.do(ctx, http.MethodGet, PathGreet, nil, &resp); err != nil {
		return "", err
	}
	return resp.Greeting, nil
}

// do sends in as JSON (nil sends no body) and decodes a 2xx response into
// out (nil discards it).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", path, err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.New().String()
	req.Header.Set(RequestIDHeader, reqID)

	log := c.logger.With(zap.String("path", path), zap.String("request_id", reqID))
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug("backend request failed", zap.Error(err))
		return fmt.Errorf("%s: request failed: %w", path, err)
	}
	defer resp.Body.Close()

	log.Debug("backend responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", path, err)
	}
	return nil
}

func newStatusError(path string, resp *http.Response) *StatusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	se := &StatusError{Path: path, StatusCode: resp.StatusCode}

	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error != "" {
		se.Message = er.Error
	} else {
		se.Message = strings.TrimSpace(string(raw))
	}
	return se
}
