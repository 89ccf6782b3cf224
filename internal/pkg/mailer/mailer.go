package mailer

import (
	"fmt"
	log "log/slog"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers verification codes. The SMTP server is an external
// collaborator; MockMailer stands in for local development.
type Mailer interface {
	SendVerificationCode(to string, name string, code string) error
}

func New(cfg config.MailConfig) Mailer {
	if cfg.Mock {
		return &MockMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (s *SMTPMailer) SendVerificationCode(to string, name string, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your GoViral verification code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour verification code is %s. It expires in 24 hours.\n\n— The GoViral team", name, code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// MockMailer logs the code instead of sending it.
type MockMailer struct{}

func (s *MockMailer) SendVerificationCode(to string, name string, code string) error {
	log.Info("mock mail: verification code", "to", to, "name", name, "code", code)
	return nil
}
