package email

import (
	"context"

	"gopkg.in/mail.v2"

	"github.com/notifyx/notifyx/internal/dispatch"
)

// Sender delivers notifications over SMTP.
type Sender struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewSender(smtpHost string, smtpPort int, username, password, from string) *Sender {
	return &Sender{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *Sender) Send(_ context.Context, msg dispatch.Message) error {
	message := mail.NewMessage()

	message.SetHeader("From", s.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)

	message.SetBody("text/plain", msg.Body)

	dialer := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)

	return dialer.DialAndSend(message)
}
