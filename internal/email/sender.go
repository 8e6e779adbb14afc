// Package email provides outbound mail delivery.
package email

import "context"

// Sender delivers a plain-text message.
type Sender interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

// NoopSender is used when SMTP is not configured. Sends succeed silently.
type NoopSender struct{}

func (NoopSender) Send(context.Context, string, string, string) error {
	return nil
}
