package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jevelon/backend/internal/config"
	"github.com/jevelon/backend/internal/logging"
)

// Message is a rendered notification addressed to one recipient.
type Message struct {
	Template  string
	Recipient string
	Subject   string
	Body      string
	EntityID  string
}

// Outcome reports whether a message was accepted by the transport.
type Outcome struct {
	Recipient string
	Template  string
	EntityID  string
	Delivered bool
	Err       error
}

// AllDelivered reports whether every outcome was delivered. It is false for
// an empty list.
func AllDelivered(outcomes ...Outcome) bool {
	if len(outcomes) == 0 {
		return false
	}
	for _, o := range outcomes {
		if !o.Delivered {
			return false
		}
	}
	return true
}

// Notifier renders and sends the submission mails.
type Notifier struct {
	sender     Sender
	from       string
	adminEmail string
	brandName  string
	timeout    time.Duration
}

// New creates a Notifier that delivers through sender using the addresses in cfg.
func New(sender Sender, cfg config.MailConfig) *Notifier {
	return &Notifier{
		sender:     sender,
		from:       cfg.FromEmail,
		adminEmail: cfg.AdminEmail,
		brandName:  cfg.BrandName,
		timeout:    cfg.Timeout,
	}
}

// Send hands msg to the transport. Transport errors, timeouts and panics
// are reported in the Outcome and logged; Send itself never fails.
func (n *Notifier) Send(ctx context.Context, msg Message) (out Outcome) {
	out = Outcome{Recipient: msg.Recipient, Template: msg.Template, EntityID: msg.EntityID}
	log := logging.FromContext(ctx).With(
		slog.String("recipient", msg.Recipient),
		slog.String("template", msg.Template),
		slog.String("entity_id", msg.EntityID),
	)

	defer func() {
		if r := recover(); r != nil {
			out.Delivered = false
			out.Err = fmt.Errorf("mail transport panic: %v", r)
			log.Warn("notification failed", "error", out.Err)
		}
	}()

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	err := n.sender.Send(ctx, Envelope{
		From:    n.from,
		To:      []string{msg.Recipient},
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		out.Err = err
		log.Warn("notification failed", "error", err)
		return out
	}
	out.Delivered = true
	log.Info("notification sent")
	return out
}
