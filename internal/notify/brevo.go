package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender delivers mail through the Brevo transactional email API.
type BrevoSender struct {
	apiKey     string
	senderName string
	sandbox    bool
	endpoint   string
	httpClient *http.Client
}

// NewBrevoSender returns nil when no API key is configured.
func NewBrevoSender(apiKey, senderName string, sandbox bool) *BrevoSender {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &BrevoSender{
		apiKey:     apiKey,
		senderName: senderName,
		sandbox:    sandbox,
		endpoint:   defaultBrevoEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithEndpoint points the sender at another API base, e.g. a test server.
func (c *BrevoSender) WithEndpoint(endpoint string) *BrevoSender {
	c.endpoint = endpoint
	return c
}

var _ Sender = (*BrevoSender)(nil)

func (c *BrevoSender) Send(ctx context.Context, env Envelope) error {
	if c == nil {
		return errors.New("brevo sender is nil")
	}
	if err := validateEnvelope(env); err != nil {
		return err
	}

	payload := brevoSendRequest{
		Sender:      brevoContact{Name: c.senderName, Email: env.From},
		Subject:     env.Subject,
		TextContent: env.Body,
	}
	for _, to := range env.To {
		payload.To = append(payload.To, brevoContact{Email: to})
	}
	if c.sandbox {
		payload.Headers = map[string]string{"X-Sib-Sandbox": "drop"}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("brevo decode response: %w", err)
	}
	if strings.TrimSpace(out.MessageID) == "" {
		return errors.New("brevo response missing messageId")
	}
	return nil
}

type brevoSendRequest struct {
	Sender      brevoContact      `json:"sender"`
	To          []brevoContact    `json:"to"`
	Subject     string            `json:"subject"`
	TextContent string            `json:"textContent"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type brevoContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}
