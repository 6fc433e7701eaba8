package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is the stored contact record.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// CreateLeadParams holds the fields required to store a lead.
type CreateLeadParams struct {
	Name  string
	Email string
	Phone string
}

// LeadsRepository defines the persistence operations for leads.
type LeadsRepository interface {
	// Create stores a new lead and returns it with ID and CreatedAt populated.
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	// ExistsOnDay reports whether the email already submitted a lead during
	// the calendar day containing the given instant (UTC).
	ExistsOnDay(ctx context.Context, email string, at time.Time) (bool, error)
}
