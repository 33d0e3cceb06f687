package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MAIL_BACKEND", "")
	t.Setenv("ALLOWED_HOSTS", "")
	t.Setenv("SMTP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddr)
	assert.Equal(t, MailBackendLog, cfg.Mail.Backend)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.AllowedHosts)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("DEFAULT_FROM_EMAIL", "robot@example.com")
	t.Setenv("ALLOWED_HOSTS", "api.example.com, .example.org")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com")
	t.Setenv("MAIL_BACKEND", "SMTP")
	t.Setenv("MAIL_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "admin@example.com", cfg.Mail.AdminEmail)
	assert.Equal(t, "robot@example.com", cfg.Mail.FromEmail)
	assert.Equal(t, []string{"api.example.com", ".example.org"}, cfg.AllowedHosts)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, MailBackendSMTP, cfg.Mail.Backend)
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("SMTP_PORT", "twenty-five")

	_, err := Load()
	assert.ErrorContains(t, err, "SMTP_PORT")
}

func TestLoad_InvalidMailBackend(t *testing.T) {
	t.Setenv("MAIL_BACKEND", "pigeon")

	_, err := Load()
	assert.Error(t, err)
}

func TestHostAllowed(t *testing.T) {
	cfg := &Config{AllowedHosts: []string{"api.example.com", ".example.org"}}

	assert.True(t, cfg.HostAllowed("api.example.com"))
	assert.True(t, cfg.HostAllowed("API.EXAMPLE.COM"))
	assert.True(t, cfg.HostAllowed("example.org"))
	assert.True(t, cfg.HostAllowed("www.example.org"))
	assert.False(t, cfg.HostAllowed("evil.com"))
	assert.False(t, cfg.HostAllowed("badexample.org"))

	wildcard := &Config{AllowedHosts: []string{"*"}}
	assert.True(t, wildcard.HostAllowed("anything.test"))

	empty := &Config{}
	assert.False(t, empty.HostAllowed("localhost"))
	empty.Debug = true
	assert.True(t, empty.HostAllowed("localhost"))
}

func TestOriginAllowed(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: []string{"https://jevelon.com"}}

	assert.True(t, cfg.OriginAllowed("https://jevelon.com"))
	assert.False(t, cfg.OriginAllowed("https://other.com"))
}
