// ABOUTME: Email sender contract and the dev/test logging sender
// ABOUTME: Delivery is best-effort and must never panic past this boundary
package email

import "log"

// Sender delivers one HTML email. Implementations report failure through the
// error return only; they never panic. The returned id is the provider
// message id, empty when the send was simulated.
type Sender interface {
	Send(to, subject, htmlBody string) (messageID string, err error)
}

// LogSender logs sends instead of delivering them. Used in development and
// as the fallback when SMTP is not configured.
type LogSender struct{}

func (LogSender) Send(to, subject, htmlBody string) (string, error) {
	log.Printf("mock email to %s: %s", to, subject)
	return "", nil
}
