// Package mail provides the Resend-backed implementation of the Mailer service.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"elyukal/config"
	"elyukal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// resendMailer implements service.Mailer using the Resend API.
type resendMailer struct {
	client *resend.Client
	cfg    *config.MailConfig
	logger *slog.Logger
}

// NewResendMailer creates a Resend-backed mailer.
func NewResendMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("resend API key is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("from email is required")
	}

	return &resendMailer{
		client: resend.NewClient(cfg.APIKey),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SendApplicationReceived notifies a seller that their application was submitted
func (m *resendMailer) SendApplicationReceived(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "We Received Your Seller Application", applicationReceivedTemplate(name))
}

// SendApplicationApproved notifies a seller that their application was accepted
func (m *resendMailer) SendApplicationApproved(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Your Seller Application Was Approved", applicationApprovedTemplate(name))
}

// SendApplicationRejected notifies a seller that their application was declined
func (m *resendMailer) SendApplicationRejected(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Update on Your Seller Application", applicationRejectedTemplate(name))
}

func (m *resendMailer) send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		m.logger.Warn("failed to send email", slog.String("to", to), slog.String("subject", subject), slog.Any("error", err))
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Info("email sent", slog.String("to", to), slog.String("subject", subject), slog.String("id", sent.Id))
	return nil
}
