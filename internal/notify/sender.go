// Package notify delivers plain-text notification mails. Transports
// implement Sender and report failures as errors; Notifier turns those into
// Outcome values so callers never see a delivery failure as an error.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"
	"time"
)

// Envelope is one outgoing plain-text mail.
type Envelope struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Sender defines the interface for mail transports.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, env Envelope) error

func (f SenderFunc) Send(ctx context.Context, env Envelope) error { return f(ctx, env) }

// BuildMessage renders env as an RFC 5322 message with CRLF line endings.
func BuildMessage(env Envelope, now time.Time) []byte {
	var b bytes.Buffer
	header := func(k, v string) {
		fmt.Fprintf(&b, "%s: %s\r\n", k, v)
	}
	header("From", env.From)
	header("To", strings.Join(env.To, ", "))
	header("Subject", mime.QEncoding.Encode("utf-8", env.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/plain; charset="utf-8"`)
	header("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(env.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\r\n")
	}
	return b.Bytes()
}

func validateEnvelope(env Envelope) error {
	if strings.TrimSpace(env.From) == "" {
		return fmt.Errorf("missing sender address")
	}
	if len(env.To) == 0 {
		return fmt.Errorf("missing recipient")
	}
	for _, to := range env.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("empty recipient address")
		}
	}
	if strings.TrimSpace(env.Subject) == "" {
		return fmt.Errorf("missing subject")
	}
	return nil
}
