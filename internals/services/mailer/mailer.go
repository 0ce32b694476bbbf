// Package mailer sends the transactional emails of the platform (approval
// notices, password resets). Sending is best-effort: callers fire it from a
// goroutine and a failure only logs, it never fails the request.
package mailer

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"suas_backend/internals/configs"
)

type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func New(cfg configs.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

const bodyTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
  <h2 style="color:#2c3e50;">%s</h2>
  <p>%s</p>
  <p style="margin-top:24px;">Cordialement,<br/>L'équipe SUAS</p>
</div>`

// Send delivers one HTML email. Title is rendered as the heading, message
// as the paragraph body.
func (m *Mailer) Send(to, subject, title, message string) error {
	if m.host == "" {
		return fmt.Errorf("SMTP non configuré")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", fmt.Sprintf(bodyTemplate, title, message))

	d := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return d.DialAndSend(msg)
}

// SendAsync fires Send in the background and logs the outcome.
func (m *Mailer) SendAsync(to, subject, title, message string) {
	go func() {
		if err := m.Send(to, subject, title, message); err != nil {
			log.Printf("[ERROR] envoi email à %s: %v", to, err)
		}
	}()
}
