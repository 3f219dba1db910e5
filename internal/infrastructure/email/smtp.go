package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"MarketBrief/internal/config"
	"MarketBrief/internal/ports"
)

// Sender delivers the digest as a multipart/alternative e-mail over SMTP
// with STARTTLS.
type Sender struct {
	cfg config.EmailConfig
}

var _ ports.Mailer = (*Sender)(nil)

// NewSender wires the SMTP configuration.
func NewSender(cfg config.EmailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send builds the MIME message and submits it. The plain-text part comes
// first so clients without HTML support render the Markdown digest.
func (s *Sender) Send(ctx context.Context, subject, htmlBody, textBody string) error {
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || len(s.cfg.To) == 0 {
		return fmt.Errorf("email sender misconfigured")
	}

	msg := buildMessage(s.cfg, subject, htmlBody, textBody)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.cfg.Username, s.cfg.To, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

const mimeBoundary = "=_marketbrief_alt"

func buildMessage(cfg config.EmailConfig, subject, htmlBody, textBody string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", cfg.FromName, cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(cfg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)
	return b.String()
}
