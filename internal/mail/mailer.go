// Package mail provides email delivery over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer defines the interface for sending email.
type Mailer interface {
	// Send delivers an HTML email to a single recipient.
	Send(to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer using an SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer for the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers an HTML email to a single recipient.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// ResetPasswordBody renders the password-reset email for a reset URL.
func ResetPasswordBody(resetURL string) string {
	return fmt.Sprintf(`
<div style="font-family:sans-serif">
  <p>Forgot your password? Set a new password from this link:</p>
  <a href="%s">%s</a>
  <p>If you didn't forget your password, please ignore this email!</p>
</div>
`, resetURL, resetURL)
}

// Ensure SMTPMailer implements Mailer interface
var _ Mailer = (*SMTPMailer)(nil)
