package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends plain-text mail over SMTP. When SMTP env vars are absent it
// logs the message instead, so contact replies keep working in development.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
	log      *zap.Logger
}

func New(log *zap.Logger) *Mailer {
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		fromName: os.Getenv("SMTP_FROM_NAME"),
		log:      log,
	}
}

func (m *Mailer) configured() bool {
	return m.host != "" && m.port != "" && m.username != "" && m.password != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.configured() {
		m.log.Info("mock email (SMTP not configured)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	subject = safe(subject)

	from := fmt.Sprintf("%s <%s>", m.fromName, m.username)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		from, to, subject, body,
	)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	return smtp.SendMail(addr, auth, m.username, []string{to}, []byte(msg))
}
