package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"

	"github.com/danielsolis/portfolio-site-backend/config"
	"github.com/danielsolis/portfolio-site-backend/errs"
)

const (
	smtpHost       = "smtp.gmail.com"
	smtpPort       = 587
	mailRecipient  = "solis.alcantar.daniel@gmail.com"
	contactSubject = "New Message Portfolio"
)

// ContactMessage is the structured payload of one contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Notifier forwards a contact message to the site owner. The send is
// synchronous; a failed delivery is returned to the caller, never swallowed.
type Notifier interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// Mailer delivers contact messages over SMTP with mandatory STARTTLS to the
// relay's submission port.
type Mailer struct {
	account  string
	password string
	logger   zerolog.Logger
}

// NewMailer builds a Mailer from the EMAIL / PASSWORD environment pair.
func NewMailer(cfg map[string]string) (*Mailer, error) {
	account := config.GetString(cfg, "EMAIL", "")
	password := config.GetString(cfg, "PASSWORD", "")
	if account == "" || password == "" {
		return nil, fmt.Errorf("EMAIL and PASSWORD environment variables are required")
	}

	return &Mailer{
		account:  account,
		password: password,
		logger:   log.With().Str("service", "mailer").Logger(),
	}, nil
}

// Send delivers one plain-text email to the fixed recipient. Any dial, auth
// or submission error propagates to the caller.
func (m *Mailer) Send(ctx context.Context, msg ContactMessage) error {
	reference := uuid.New()

	email := mail.NewMsg()
	if err := email.From(m.account); err != nil {
		return errs.NewDeliveryError(err)
	}
	if err := email.To(mailRecipient); err != nil {
		return errs.NewDeliveryError(err)
	}
	email.Subject(contactSubject)
	email.SetBodyString(mail.TypeTextPlain, FormatBody(msg))

	client, err := mail.NewClient(smtpHost,
		mail.WithPort(smtpPort),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.account),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return errs.NewDeliveryError(err)
	}

	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		m.logger.Error().Err(err).Str("reference", reference.String()).Msg("Contact message delivery failed")
		return errs.NewDeliveryError(err)
	}

	m.logger.Info().Str("reference", reference.String()).Str("from", msg.Email).Msg("Contact message delivered")
	return nil
}

// FormatBody concatenates the four labeled fields into the message body.
func FormatBody(msg ContactMessage) string {
	return fmt.Sprintf("Name: %s\n\nEmail: %s\n\nPhone: %s\n\nMessage: %s",
		msg.Name, msg.Email, msg.Phone, msg.Message)
}
