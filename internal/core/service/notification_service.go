package service

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

const demoRequestSubject = "Nova solicitação de demonstração - SQM Assessment"

// NotificationService renders demo-request notifications and hands them to
// the mailer. One attempt, no retry; the caller surfaces the raw error.
type NotificationService struct {
	mailer ports.Mailer
	to     string
	logger zerolog.Logger
}

func NewNotificationService(mailer ports.Mailer, to string, logger zerolog.Logger) *NotificationService {
	return &NotificationService{mailer: mailer, to: to, logger: logger}
}

// SendDemoRequest dispatches the templated notification and returns the
// message id.
func (s *NotificationService) SendDemoRequest(ctx context.Context, req ports.DemoRequest) (string, error) {
	msg := ports.Message{
		To:      s.to,
		Subject: demoRequestSubject,
		HTML:    demoRequestBody(req),
	}

	messageID, err := s.mailer.Send(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Str("to", s.to).Msg("demo request email failed")
		return "", err
	}

	s.logger.Info().Str("message_id", messageID).Msg("demo request email sent")
	return messageID, nil
}

func demoRequestBody(req ports.DemoRequest) string {
	return fmt.Sprintf(`
        <h1>Nova solicitação de demonstração</h1>
        <p><strong>Nome:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Telefone:</strong> %s</p>
        <p>Este contato foi enviado através do formulário de demonstração do SQM Assessment.</p>
      `,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Phone),
	)
}
