package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"gympoint/internal/application/mail"
	"gympoint/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPSender delivers mail through an SMTP relay. It dials once per message.
type SMTPSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPSender(config SMTPConfig, logger logger.Interface) *SMTPSender {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPSender{
		config: config,
		dialer: dialer,
		logger: logger,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg *mail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(s.buildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", msg.To.Email, "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) buildMessage(msg *mail.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetAddressHeader("To", msg.To.Email, msg.To.Name)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return m
}

// LogSender logs messages instead of delivering them. It is used when no
// SMTP host is configured.
type LogSender struct {
	logger logger.Interface
}

func NewLogSender(logger logger.Interface) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg *mail.Message) error {
	s.logger.Infow("email not delivered, smtp is not configured",
		"to", msg.To.Email,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}
