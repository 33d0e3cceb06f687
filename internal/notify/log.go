package notify

import (
	"context"
	"log/slog"
	"strings"
)

// LogSender writes mails to the structured log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender logs through log, or slog.Default() when log is nil.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

var _ Sender = (*LogSender)(nil)

func (s *LogSender) Send(ctx context.Context, env Envelope) error {
	if err := validateEnvelope(env); err != nil {
		return err
	}
	log := s.log
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, "mail (log backend)",
		"from", env.From,
		"to", strings.Join(env.To, ", "),
		"subject", env.Subject,
		"body", env.Body,
	)
	return nil
}
