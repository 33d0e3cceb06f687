package service

import (
	"context"
	"log/slog"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/notify"
)

// Notifier sends the mails that follow a stored submission. Implementations
// report delivery in the Outcome and never fail the submission.
type Notifier interface {
	NotifyContact(ctx context.Context, c *model.ContactMessage) notify.Outcome
	NotifySupportTicket(ctx context.Context, t *model.SupportTicket) notify.Outcome
	ConfirmConsultation(ctx context.Context, c *model.ConsultationRequest) notify.Outcome
	NotifyConsultation(ctx context.Context, c *model.ConsultationRequest) notify.Outcome
}

var _ Notifier = (*notify.Notifier)(nil)

// recordFlag persists the email_sent flag. A failure here leaves the stored
// row with email_sent=false; it is logged and does not fail the request.
func recordFlag(ctx context.Context, kind, id string, sent bool, mark func(context.Context, string, bool) error) {
	if err := mark(ctx, id, sent); err != nil {
		logging.FromContext(ctx).Warn("failed to record email_sent flag",
			slog.String("entity", kind),
			slog.String("id", id),
			slog.Bool("email_sent", sent),
			slog.Any("error", err),
		)
	}
}
