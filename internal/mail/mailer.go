// Package mail delivers transactional email for the application.
package mail

import (
	"context"
	"fmt"

	"finbay/internal/config"
	"finbay/internal/middleware"
	"finbay/internal/observability"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail on behalf of the application.
type Mailer interface {
	SendResetPin(ctx context.Context, to, username, pin string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer returns a Mailer backed by the configured SMTP relay.
func NewSMTPMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (m *smtpMailer) SendResetPin(ctx context.Context, to, username, pin string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your password reset pin")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour password reset pin is: %s\n\nIf you did not request a reset you can ignore this message.\n", username, pin))

	if err := m.dialer.DialAndSend(msg); err != nil {
		observability.MailSendsTotal.WithLabelValues("error").Inc()
		middleware.Logger.ErrorContext(ctx, "failed to send reset pin mail", "to", to, "error", err.Error())
		return fmt.Errorf("send reset pin mail: %w", err)
	}
	observability.MailSendsTotal.WithLabelValues("ok").Inc()
	return nil
}

// NoopMailer discards all mail. Used in development when no SMTP relay is
// configured and in tests.
type NoopMailer struct{}

func (NoopMailer) SendResetPin(ctx context.Context, to, username, pin string) error {
	middleware.Logger.InfoContext(ctx, "mail disabled, dropping reset pin", "to", to)
	return nil
}
