// Package service provides business logic for lead capture.
package service

import (
	"context"
	"strings"
	"time"

	"resume_portal_backend/internal/events"
	"resume_portal_backend/internal/leads/repository"
	"resume_portal_backend/internal/leads/transport"
	"resume_portal_backend/platform/apperr"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/phone"
)

// DuplicateLeadMessage is returned on a same-day repeat submission. The site
// kit surfaces this text verbatim, so keep it visitor-friendly.
const DuplicateLeadMessage = "You have already submitted your details today. I'll be in touch soon!"

// Service provides business logic for leads.
type Service struct {
	repo repository.LeadsRepository
	bus  events.Bus
	log  *logger.Logger
	now  func() time.Time
}

// New creates a new leads service.
func New(repo repository.LeadsRepository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log, now: time.Now}
}

// Capture validates and stores a visitor's contact details. One lead per
// email per calendar day; repeats are rejected with a conflict error whose
// message is shown to the visitor as-is.
func (s *Service) Capture(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.ExistsOnDay(ctx, email, s.now())
	if err != nil {
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "could not check for an existing submission", err).WithOp("leads.Capture")
	}
	if exists {
		s.log.LeadEvent("lead_duplicate", email, false, "already submitted today")
		return transport.LeadResponse{}, apperr.Conflict(DuplicateLeadMessage)
	}

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: phone.NormalizeE164(req.Phone),
	})
	if err != nil {
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "could not save your details", err).WithOp("leads.Capture")
	}

	s.log.LeadEvent("lead_captured", lead.Email, true, "")

	event := events.LeadCaptured{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
	}
	s.bus.Publish(ctx, event)

	return toLeadResponse(lead), nil
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		CreatedAt: lead.CreatedAt,
	}
}
