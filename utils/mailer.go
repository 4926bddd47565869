package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"weddinghub/config"
)

// Mailer sends HTML mail.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer is the production Mailer backed by a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer builds a mailer from the application configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Send delivers a single HTML message.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.host == "" {
		return fmt.Errorf("smtp mailer: SMTP_HOST not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp mailer: failed to send to %s: %w", to, err)
	}
	return nil
}
