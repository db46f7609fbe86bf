package mailer

import (
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"
)

const FromName = "Bransfer Gateway"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Config holds the SMTP settings used for admin alerts.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	// Enabled mirrors the gateway's "send IPN notifications" switch.
	Enabled bool
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPNotifier struct {
	dialer dialer
	from   string
	to     string
	log    interfaces.ILogger
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

// NewNotifier picks the alert channel for cfg: disabled alerts are dropped,
// an incomplete SMTP setup only logs, otherwise mail is sent over SMTP.
func NewNotifier(cfg Config, log interfaces.ILogger) interfaces.INotifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if !cfg.Enabled {
		log.Infow("[mailer] admin alerts disabled")
		return disabledNotifier{log: log}
	}
	if strings.TrimSpace(cfg.Host) == "" || strings.TrimSpace(cfg.To) == "" {
		log.Warnw("[mailer] smtp not configured, alerts will only be logged")
		return logNotifier{log: log}
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}
	d := mail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password)
	return newSMTPNotifier(d, cfg.From, cfg.To, log)
}

func newSMTPNotifier(d dialer, from, to string, log interfaces.ILogger) *SMTPNotifier {
	return &SMTPNotifier{dialer: d, from: from, to: to, log: log}
}

func (n *SMTPNotifier) Send(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetAddressHeader("From", n.from, FromName)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", PlainSubject(subject))
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", WrapMessage(subject, body))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send admin alert: %w", err)
	}
	n.log.Infow("[mailer] admin alert sent", "to", n.to, "subject", PlainSubject(subject))
	return nil
}

// PlainSubject strips markup from a subject line.
func PlainSubject(subject string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(subject, ""))
}

// WrapMessage renders body inside a minimal HTML email with subject as heading.
func WrapMessage(subject, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><body>")
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(PlainSubject(subject)))
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(line))
	}
	b.WriteString("</body></html>")
	return b.String()
}

type logNotifier struct {
	log interfaces.ILogger
}

func (n logNotifier) Send(_ context.Context, subject, body string) error {
	n.log.Warnw("[mailer] admin alert", "subject", PlainSubject(subject), "body", body)
	return nil
}

type disabledNotifier struct {
	log interfaces.ILogger
}

func (n disabledNotifier) Send(_ context.Context, subject, _ string) error {
	n.log.Infow("[mailer] admin alert suppressed", "subject", PlainSubject(subject))
	return nil
}
