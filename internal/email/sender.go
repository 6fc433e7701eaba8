// Package email provides outbound email delivery for notifications.
package email

import (
	"context"
	"time"

	"resume_portal_backend/platform/config"
)

// LeadAlert carries the details of a freshly captured lead for the
// notification email sent to the site owner.
type LeadAlert struct {
	Name       string
	Email      string
	Phone      string
	CapturedAt time.Time
}

// Sender delivers notification emails.
type Sender interface {
	SendLeadAlert(ctx context.Context, to string, alert LeadAlert) error
}

// NewSender returns the configured Sender implementation. When email is
// disabled, a no-op sender is returned so callers need no special casing.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.IsEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

// NoopSender drops all emails. Used when SMTP is not configured.
type NoopSender struct{}

// SendLeadAlert implements Sender.
func (NoopSender) SendLeadAlert(context.Context, string, LeadAlert) error { return nil }
