// Package mailer dispatches transactional email through the Resend
// HTTP API. It is a thin boundary component: it performs exactly one
// provider call per Send and classifies failures so callers can tell
// a misconfigured deployment from a provider rejection from a network
// problem. Retries, if wanted, belong to the caller — a second Send
// is a second email.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simontuck/gdc2025-website-sub001/internal/config"
)

const defaultBaseURL = "https://api.resend.com"

// maxErrorBody bounds how much of a provider error payload is kept.
const maxErrorBody = 64 << 10

// ErrNotConfigured is returned when no provider API key is configured.
// No network call is attempted in that case.
var ErrNotConfigured = errors.New("mail provider API key is not configured")

// DeliveryError reports that the provider received and rejected the
// request. It carries the provider's status code and raw error payload
// for diagnostics.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail provider rejected request (status %d): %s", e.StatusCode, e.Body)
}

// SendRequest describes one outgoing email. HTML is the full message
// body; plain-text alternatives are not supported by this service.
type SendRequest struct {
	To      []string
	Subject string
	HTML    string
}

// SendResult is returned on successful dispatch.
type SendResult struct {
	ID     string    `json:"id"`      // provider-assigned message id
	SentAt time.Time `json:"sent_at"` // when the provider accepted the message
}

// Client is a Resend API client. The zero value is not usable; build
// one with NewClient.
type Client struct {
	apiKey  string
	from    string
	replyTo string
	baseURL string
	http    *http.Client
}

// NewClient builds a mail client from configuration. A client with an
// empty API key is still constructed — it reports ErrNotConfigured on
// every Send — so the rest of the service can run without mail
// credentials in development.
func NewClient(cfg config.MailConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
		baseURL: base,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether a provider API key is present. Used at
// startup to log a visible warning instead of failing lazily.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Send performs a single provider call. Failure modes:
//   - ErrNotConfigured when no API key is set (no network call made)
//   - *DeliveryError when the provider answers with a non-2xx status
//   - a wrapped transport error when the provider is unreachable
func (c *Client) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload := struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
		ReplyTo string   `json:"reply_to,omitempty"`
	}{
		From:    c.from,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
		ReplyTo: c.replyTo,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode mail request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build mail request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mail provider unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DeliveryError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out struct {
		ID string `json:"id"`
	}
	// A malformed success body still means the mail was accepted; the
	// message id is then simply empty.
	_ = json.Unmarshal(raw, &out)

	return &SendResult{ID: out.ID, SentAt: time.Now().UTC()}, nil
}
