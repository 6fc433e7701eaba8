// Package notification reacts to domain events with outbound messages.
// It is not HTTP-facing; it only subscribes to the event bus.
package notification

import (
	"context"

	"resume_portal_backend/internal/email"
	"resume_portal_backend/internal/events"
	"resume_portal_backend/platform/config"
	"resume_portal_backend/platform/logger"
)

// Module wires domain events to the email sender.
type Module struct {
	sender     email.Sender
	ownerEmail string
	log        *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.EmailConfig, log *logger.Logger) *Module {
	return &Module{
		sender:     sender,
		ownerEmail: cfg.GetOwnerEmail(),
		log:        log,
	}
}

// RegisterHandlers subscribes the module to the events it cares about.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.onLeadCaptured))
}

func (m *Module) onLeadCaptured(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadCaptured)
	if !ok {
		return nil
	}

	alert := email.LeadAlert{
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		CapturedAt: e.OccurredAt(),
	}

	if err := m.sender.SendLeadAlert(ctx, m.ownerEmail, alert); err != nil {
		m.log.Error("lead alert email failed", "error", err, "leadId", e.LeadID)
		return err
	}

	m.log.Info("lead alert email sent", "leadId", e.LeadID)
	return nil
}
