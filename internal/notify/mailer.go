// Package notify renders and sends transactional email for the contacts
// API. Its only message today is the registration confirmation email.
package notify

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/contactkeeper/go-contact-keeper/internal/config"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

// confirmationSubject is the subject line of the confirmation message.
const confirmationSubject = "Confirm your email"

// ConfirmationEmail carries everything needed to render and send one
// registration confirmation message.
type ConfirmationEmail struct {
	// To is the recipient address (the email being confirmed).
	To string

	// Username is the recipient's display name used in the greeting.
	Username string

	// ConfirmationURL is the signed link the recipient must follow.
	ConfirmationURL string
}

// Sender delivers confirmation messages. The production implementation is
// [SMTPSender]; tests substitute fakes.
type Sender interface {
	SendConfirmation(ctx context.Context, msg ConfirmationEmail) error
}

// SMTPSender renders the embedded HTML template and delivers it through an
// SMTP-compatible provider using go-mail.
type SMTPSender struct {
	cfg      config.Mail
	template *template.Template
	logger   *logger.Logger
}

// NewSMTPSender parses the embedded confirmation template and returns a
// ready-to-use sender. SMTP connections are established per message, so no
// connection state is held between sends.
func NewSMTPSender(cfg config.Mail, logger *logger.Logger) (*SMTPSender, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/confirmation_email.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing email template: %w", err)
	}

	return &SMTPSender{
		cfg:      cfg,
		template: tmpl,
		logger:   logger,
	}, nil
}

// SendConfirmation renders the confirmation template with the message data
// and sends it. The caller (the background mail worker) is responsible for
// swallowing delivery failures; this method only reports them.
func (s *SMTPSender) SendConfirmation(ctx context.Context, msg ConfirmationEmail) error {
	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	m.Subject(confirmationSubject)
	if err := m.SetBodyHTMLTemplate(s.template, msg); err != nil {
		return fmt.Errorf("error rendering email template: %w", err)
	}

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("error creating SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	return nil
}

// newClient builds a go-mail client from the SMTP configuration.
func (s *SMTPSender) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}

	switch {
	case s.cfg.SSL:
		opts = append(opts, mail.WithSSL())
	case s.cfg.StartTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	return mail.NewClient(s.cfg.Host, opts...)
}
