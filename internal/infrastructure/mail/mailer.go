// Package mail dispatches outbound email over SMTP via gomail.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures SMTP account settings. From defaults to Username when empty.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Mailer{cfg: cfg}
}

// Configured reports whether dispatch credentials are present.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != ""
}

// Send dispatches a plain-text message, attaching attachmentPath when set.
// The context deadline bounds the SMTP dial-and-send so a slow server cannot
// stall the calling request indefinitely.
func (m *Mailer) Send(ctx context.Context, to, subject, body, attachmentPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachmentPath != "" {
		msg.Attach(attachmentPath)
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	errCh := make(chan error, 1)
	go func() { errCh <- dialer.DialAndSend(msg) }()

	select {
	case <-ctx.Done():
		return fmt.Errorf("mail send: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mail send: %w", err)
		}
		return nil
	}
}
