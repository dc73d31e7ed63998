package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"jobboard_backend/internal/config"
)

// GomailProvider delivers mail over SMTP using gomail.
type GomailProvider struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewGomailProvider(cfg *config.EmailConfig) *GomailProvider {
	return &GomailProvider{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
	}
}

func (p *GomailProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.from, p.fromName)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	if email.IsHTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", email.To, err)
	}
	return nil
}
