package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"slotify/models"
)

// EmailSender delivers a reminder over email.
type EmailSender interface {
	Send(ctx context.Context, settings models.EmailSettings, to, subject, body string) error
}

// SMTPEmailSender sends through the business's configured SMTP relay.
type SMTPEmailSender struct{}

func NewSMTPEmailSender() *SMTPEmailSender {
	return &SMTPEmailSender{}
}

func (s *SMTPEmailSender) Send(ctx context.Context, settings models.EmailSettings, to, subject, body string) error {
	if settings.SMTPHost == "" || settings.From == "" {
		return fmt.Errorf("email sender: missing SMTP host or from address")
	}
	port := settings.SMTPPort
	if port == 0 {
		port = 587
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		settings.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", settings.SMTPHost, port)
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, nil, settings.From, []string{to}, []byte(msg))
	}()

	// net/smtp has no context support; bound it ourselves.
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("email sender: send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email sender: %w", ctx.Err())
	}
}
