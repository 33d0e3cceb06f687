package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSender stores mails in Redis instead of delivering them, so staging
// environments can inspect what would have been sent. Each recipient gets a
// key mailbox:<recipient>:<unix-nano> expiring after ttl.
type RedisSender struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisSender(client redis.Cmdable, ttl time.Duration) *RedisSender {
	return &RedisSender{client: client, ttl: ttl, now: time.Now}
}

var _ Sender = (*RedisSender)(nil)

type storedMail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	SentAt  string   `json:"sent_at"`
}

// MailboxKey is the key prefix under which mails to recipient are stored.
func MailboxKey(recipient string) string {
	return "mailbox:" + recipient + ":"
}

func (s *RedisSender) Send(ctx context.Context, env Envelope) error {
	if err := validateEnvelope(env); err != nil {
		return err
	}
	now := s.now().UTC()
	data, err := json.Marshal(storedMail{
		From:    env.From,
		To:      env.To,
		Subject: env.Subject,
		Body:    env.Body,
		SentAt:  now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}
	for _, to := range env.To {
		key := fmt.Sprintf("%s%d", MailboxKey(to), now.UnixNano())
		if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
			return fmt.Errorf("store mail in redis key %q: %w", key, err)
		}
	}
	return nil
}
