package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"shieldtrack/internal/domain/setting"
)

// Sender delivers mail using the persisted SMTP settings, so an admin can
// change the relay without restarting the server.
type Sender interface {
	Send(settings *setting.SMTPSettings, to, subject, htmlBody string) error
}

type gomailSender struct{}

func NewSender() Sender {
	return &gomailSender{}
}

func (s *gomailSender) Send(settings *setting.SMTPSettings, to, subject, htmlBody string) error {
	if settings == nil || !settings.Enabled() {
		return fmt.Errorf("mail delivery is not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", settings.FromEmail(), settings.FromName())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(settings.Host(), settings.Port(), settings.Username(), settings.Password())
	d.SSL = settings.UseTLS()

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
