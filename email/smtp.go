// ABOUTME: SMTP-backed email sender configured from the environment
// ABOUTME: Missing configuration is a structured failure, not a crash
package email

import (
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

// ErrNotConfigured reports that SMTP credentials are absent. Callers treat
// it as a degraded-delivery condition, not a fatal error.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// Config is populated from SMTP_* environment variables.
type Config struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM" envDefault:"CareOps <noreply@careops.com>"`
}

// LoadConfig reads SMTP settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse smtp config: %w", err)
	}
	return cfg, nil
}

// IsConfigured reports whether enough settings are present to attempt
// delivery.
func (c Config) IsConfigured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPSender delivers HTML mail over authenticated SMTP.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) (string, error) {
	if !s.cfg.IsConfigured() {
		return "", ErrNotConfigured
	}
	if to == "" {
		return "", errors.New("missing recipient address")
	}

	messageID := fmt.Sprintf("<%s@careops>", uuid.New().String())
	msg := buildMessage(s.cfg.From, to, subject, htmlBody, messageID)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, envelopeFrom(s.cfg.From), []string{to}, msg); err != nil {
		return "", fmt.Errorf("smtp delivery failed: %w", err)
	}

	return messageID, nil
}

func buildMessage(from, to, subject, htmlBody, messageID string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Message-ID: " + messageID + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// envelopeFrom extracts the bare address from a "Name <addr>" header value.
func envelopeFrom(from string) string {
	if start := strings.LastIndex(from, "<"); start != -1 {
		if end := strings.LastIndex(from, ">"); end > start {
			return from[start+1 : end]
		}
	}
	return from
}
