// Package mocks provides a mock implementation of the Mailer interface for testing.
package mocks

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	SendFunc func(to, subject, htmlBody string) error

	// Sent records every delivered message for assertions.
	Sent []SentMessage
}

// SentMessage is one recorded email.
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

func (m *MockMailer) Send(to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}
