// Package gemini provides a client for interpreting itinerary text with the
// Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/theirongolddev/tripbook/internal/contract"
	"github.com/theirongolddev/tripbook/internal/model"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-pro"
	// DefaultBaseURL is the public Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	maxBodySize = 8 << 20 // 8 MB
	userAgent   = "github.com/theirongolddev/tripbook/1.0"
)

var (
	// ErrExternalCall indicates the interpretation service could not be reached
	// or answered with a failure status.
	ErrExternalCall = errors.New("gemini: external call failed")
	// ErrUnauthorized indicates the API key is missing, expired or invalid.
	ErrUnauthorized = fmt.Errorf("%w: unauthorized (API key missing or invalid)", ErrExternalCall)
	// ErrRateLimited indicates the API quota or rate limit was hit.
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrExternalCall)
)

// Client calls generateContent with the booklet response schema.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides DefaultModel. Blank values are ignored.
func WithModel(name string) Option {
	return func(c *Client) {
		if name = strings.TrimSpace(name); name != "" {
			c.model = name
		}
	}
}

// WithBaseURL overrides DefaultBaseURL. Blank values are ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient creates a client for the given API key.
// Returns nil if the key is empty.
func NewClient(apiKey string, opts ...Option) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	c := &Client{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Interpret sends normalized sheet text for interpretation and returns the
// validated booklet. Deadlines and cancellation come from ctx.
func (c *Client) Interpret(ctx context.Context, text string) (*model.BookletData, error) {
	if c == nil {
		return nil, ErrUnauthorized
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: contract.Prompt(text)}},
		}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   contract.ResponseSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: encoding request: %w", err)
	}

	raw, err := c.post(ctx, c.endpoint(), body)
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %v", contract.ErrMalformedResponse, err)
	}

	payload, err := resp.text()
	if err != nil {
		return nil, err
	}
	return contract.Decode([]byte(payload))
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

// post performs an authenticated POST request and returns the response body.
func (c *Client) post(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: creating request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	//nolint:gosec // URL is built from configured base URL and model name
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrExternalCall, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: reading response: %v", ErrExternalCall, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, data)
	}
	return data, nil
}

func statusError(code int, body []byte) error {
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Error.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrExternalCall, code, ae.Error.Message)
	}
	return fmt.Errorf("%w: unexpected status %d", ErrExternalCall, code)
}

// text joins the text parts of the first candidate.
func (r *generateResponse) text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", contract.ErrMalformedResponse, r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", contract.ErrMalformedResponse)
	}

	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		reason := r.Candidates[0].FinishReason
		if reason == "" {
			reason = "empty"
		}
		return "", fmt.Errorf("%w: no text in response (%s)", contract.ErrMalformedResponse, reason)
	}
	return b.String(), nil
}
