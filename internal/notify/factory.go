package notify

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jevelon/backend/internal/config"
)

// NewSender builds the transport selected by cfg.Backend. The returned
// close function releases transport resources and is never nil.
func NewSender(cfg config.MailConfig) (Sender, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.MailBackendSMTP:
		if cfg.SMTPHost == "" {
			return nil, noop, fmt.Errorf("SMTP_HOST is required for the smtp mail backend")
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), noop, nil
	case config.MailBackendBrevo:
		s := NewBrevoSender(cfg.BrevoAPIKey, cfg.BrevoSenderName, cfg.BrevoSandbox)
		if s == nil {
			return nil, noop, fmt.Errorf("BREVO_API_KEY is required for the brevo mail backend")
		}
		return s, noop, nil
	case config.MailBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisSender(client, cfg.MailboxTTL), client.Close, nil
	case config.MailBackendLog, "":
		return NewLogSender(slog.Default()), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown mail backend %q", cfg.Backend)
	}
}
