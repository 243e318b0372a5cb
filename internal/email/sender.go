package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mail "github.com/wneessen/go-mail"

	"pricingdesk.app/server/core/config"
)

const smtpTimeout = 10 * time.Second

// SMTPSender delivers messages through a relay. STARTTLS is used when the
// server offers it; authentication only when credentials are configured.
type SMTPSender struct {
	from string
	opts []mail.Option
	host string
}

func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPSender{from: cfg.From, opts: opts, host: cfg.Host}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending email to %s: %w", msg.To, err)
	}

	slog.InfoContext(ctx, "email sent", "to", msg.To, "kind", msg.Kind)
	return nil
}

func (s *SMTPSender) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	m.SetMessageID()
	return m, nil
}

// LogSender only logs messages. Used when no SMTP relay is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "smtp disabled, email not sent",
		"to", msg.To,
		"kind", msg.Kind,
		"subject", msg.Subject)
	return nil
}

// NewSender picks the SMTP sender when a relay is configured.
func NewSender(cfg config.SMTPConfig) (Sender, error) {
	if !cfg.Enabled() {
		return LogSender{}, nil
	}
	return NewSMTPSender(cfg)
}
