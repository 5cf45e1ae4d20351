// Package mail dispatches notifications over SMTP.
package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// Config holds the SMTP endpoints. Port is the STARTTLS endpoint tried
// first; SSLPort is the implicit-TLS alternative used when the first dial
// fails.
type Config struct {
	Host     string
	Port     int
	SSLPort  int
	Username string
	Password string
}

// SMTPMailer sends one message per call, trying STARTTLS before falling back
// to implicit TLS. No queue, no retry beyond the fallback.
type SMTPMailer struct {
	cfg    Config
	send   func(d *gomail.Dialer, m *gomail.Message) error
	logger zerolog.Logger
}

func NewSMTPMailer(cfg Config, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		send: func(d *gomail.Dialer, m *gomail.Message) error {
			return d.DialAndSend(m)
		},
		logger: logger,
	}
}

// Send dispatches msg and returns the generated Message-ID.
func (m *SMTPMailer) Send(_ context.Context, msg ports.Message) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.Username)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-ID", messageID)
	gm.SetBody("text/html", msg.HTML)

	primary := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := m.send(primary, gm); err != nil {
		m.logger.Warn().Err(err).
			Int("port", m.cfg.Port).
			Msg("smtp starttls dial failed, retrying over ssl")

		fallback := gomail.NewDialer(m.cfg.Host, m.cfg.SSLPort, m.cfg.Username, m.cfg.Password)
		fallback.SSL = true
		if err := m.send(fallback, gm); err != nil {
			return "", fmt.Errorf("smtp send: %w", err)
		}
	}

	return messageID, nil
}
